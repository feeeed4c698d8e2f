package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	questrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/quest"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/app"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/auth"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/config"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/metrics"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/quest"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/migrations"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

const commandTimeout = 5 * time.Minute

// systemActor is the caller identity questctl presents to admin-only
// service operations.
var systemActor = uuid.MustParse("00000000-0000-0000-0000-00000000c7a1")

// runContext lazily loads configuration shared by all commands.
type runContext struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (rc *runContext) load() error {
	if rc.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	rc.cfg = cfg
	rc.logger = app.NewLogger(cfg.Log)
	return nil
}

func (rc *runContext) pool(ctx context.Context) (*pgxpool.Pool, error) {
	if err := rc.load(); err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, rc.cfg.Database, rc.logger)
}

func adminCtx(ctx context.Context) context.Context {
	ctx = ctxutil.WithUserID(ctx, systemActor)
	return ctxutil.WithUserRole(ctx, domain.UserRoleAdmin.String())
}

// MigrateCmd applies the embedded goose migrations.
type MigrateCmd struct{}

func (c *MigrateCmd) Run(rc *runContext) error {
	if err := rc.load(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	db, err := sql.Open("pgx", rc.cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		rc.logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	rc.logger.Info("migrations complete", slog.Int("applied", len(results)))
	return nil
}

// ResetQuestsCmd runs the daily quest reset.
type ResetQuestsCmd struct{}

func (c *ResetQuestsCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svcs, closeFn, err := rc.services(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	deleted, err := svcs.Quest.ResetQuests(adminCtx(ctx))
	if err != nil {
		rc.logger.Error("quest reset failed", slog.String("error", err.Error()))
		return err
	}
	rc.logger.Info("quest reset completed", slog.Int64("deleted", deleted))
	return nil
}

// AssignCmd assigns the missing quests of the current day to a user.
type AssignCmd struct {
	Username string `arg:"" help:"Username to assign quests to."`
}

func (c *AssignCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svcs, closeFn, err := rc.services(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	created, err := svcs.Quest.AssignQuests(adminCtx(ctx), quest.AssignQuestsInput{Username: c.Username})
	if err != nil {
		return err
	}
	fmt.Printf("Assigned %d quest(s) to %q.\n", len(created), c.Username)
	return nil
}

// QuestsCmd prints the active quest definitions.
type QuestsCmd struct{}

func (c *QuestsCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	pool, err := rc.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	quests, err := questrepo.New(pool).ListActive(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tURL")
	for _, q := range quests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.ID, q.Type, q.Name, q.URL)
	}
	return tw.Flush()
}

// UserAddCmd creates a user, mainly for bootstrapping an admin.
type UserAddCmd struct {
	Username string `arg:"" help:"Unique username."`
	Name     string `help:"Display name." default:""`
	Role     string `help:"Role: user or admin." default:"user" enum:"user,admin"`
}

func (c *UserAddCmd) Run(rc *runContext) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	svcs, closeFn, err := rc.services(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	name := c.Name
	if name == "" {
		name = c.Username
	}
	now := time.Now()
	u, err := svcs.Users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		Username:  c.Username,
		Name:      name,
		Role:      domain.UserRole(c.Role),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created user %q (%s, role %s).\n", u.Username, u.ID, u.Role)
	return nil
}

// TokenCmd signs an access token. Tokens are normally issued by the
// account service; this is for operators and local testing.
type TokenCmd struct {
	UserID uuid.UUID `arg:"" help:"User ID to embed in the token."`
	Role   string    `help:"Role claim: user or admin." default:"user" enum:"user,admin"`
}

func (c *TokenCmd) Run(rc *runContext) error {
	if err := rc.load(); err != nil {
		return err
	}
	m := auth.NewJWTManager(rc.cfg.Auth.JWTSecret, rc.cfg.Auth.JWTIssuer, rc.cfg.Auth.AccessTokenTTL)
	token, err := m.GenerateAccessToken(c.UserID, domain.UserRole(c.Role))
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func (rc *runContext) services(ctx context.Context) (*app.Services, func(), error) {
	pool, err := rc.pool(ctx)
	if err != nil {
		return nil, nil, err
	}
	svcs, err := app.NewServices(rc.logger, pool, rc.cfg, metrics.New())
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return svcs, pool.Close, nil
}
