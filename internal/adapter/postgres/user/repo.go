// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "name", "role", "experience", "points", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Eq{"username": username}, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("username %q: %w", username, err)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRowSq(ctx, q, postgres.Builder().
		Insert(table).
		Columns("id", "username", "name", "role", "created_at", "updated_at").
		Values(u.ID, u.Username, u.Name, string(u.Role), u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, err
	}

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// AddRewards increments the user's experience and points.
func (r *Repo) AddRewards(ctx context.Context, id uuid.UUID, exp, points int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.ExecSq(ctx, q, postgres.Builder().
		Update(table).
		Set("experience", squirrel.Expr("experience + ?", exp)).
		Set("points", squirrel.Expr("points + ?", points)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row, err := postgres.QueryRowSq(ctx, q, postgres.Builder().
		Select(columns...).
		From(table).
		Where(where))
	if err != nil {
		return nil, err
	}

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Name, &role, &u.Experience, &u.Points, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
