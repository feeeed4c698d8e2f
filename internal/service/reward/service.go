// Package reward issues experience and points through an idempotent ledger.
package reward

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

type ledgerRepo interface {
	Insert(ctx context.Context, g domain.RewardGrant) (bool, error)
}

type userRepo interface {
	AddRewards(ctx context.Context, userID uuid.UUID, exp, points int64) error
}

type recorder interface {
	RewardGranted(source domain.RewardSource, exp, points int64)
}

// Issuer writes reward ledger rows and credits user balances. Grant must be
// called inside the caller's transaction so the ledger row, the balance and
// the state change that earned them commit together.
type Issuer struct {
	ledger  ledgerRepo
	users   userRepo
	metrics recorder
	log     *slog.Logger
	now     func() time.Time
}

// NewIssuer creates a new reward Issuer.
func NewIssuer(log *slog.Logger, ledger ledgerRepo, users userRepo, metrics recorder) *Issuer {
	return &Issuer{
		ledger:  ledger,
		users:   users,
		metrics: metrics,
		log:     log.With("service", "reward"),
		now:     time.Now,
	}
}

// Grant records g in the ledger and credits the user. A grant that carries
// no exp and no points is skipped. A second grant for the same source and
// cycle yields ErrRewardAlreadyGranted and credits nothing.
func (i *Issuer) Grant(ctx context.Context, g domain.RewardGrant) error {
	if g.IsZero() {
		return nil
	}
	if !g.Source.IsValid() {
		return domain.NewValidationError("source", "unknown reward source")
	}
	if g.Exp < 0 || g.Points < 0 {
		return domain.NewValidationError("amount", "must be >= 0")
	}

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = i.now()
	}

	inserted, err := i.ledger.Insert(ctx, g)
	if err != nil {
		return fmt.Errorf("insert reward grant: %w", err)
	}
	if !inserted {
		return fmt.Errorf("%s %s: %w", g.Source, g.SourceID, domain.ErrRewardAlreadyGranted)
	}

	if err := i.users.AddRewards(ctx, g.UserID, g.Exp, g.Points); err != nil {
		return fmt.Errorf("credit user: %w", err)
	}

	i.metrics.RewardGranted(g.Source, g.Exp, g.Points)
	i.log.InfoContext(ctx, "reward granted",
		slog.String("user_id", g.UserID.String()),
		slog.String("source", g.Source.String()),
		slog.String("source_id", g.SourceID.String()),
		slog.Int64("exp", g.Exp),
		slog.Int64("points", g.Points),
	)

	return nil
}
