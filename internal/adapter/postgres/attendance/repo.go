// Package attendance implements daily check-in persistence using PostgreSQL.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "attendances"

// Repo provides attendance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attendance repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create records a check-in. A second check-in on the same day yields
// ErrAlreadyCheckedIn.
func (r *Repo) Create(ctx context.Context, a domain.Attendance) error {
	_, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "attended_on", "created_at").
		Values(a.ID, a.UserID, a.AttendedOn, a.CreatedAt))
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("attendance %s: %w", a.UserID, domain.ErrAlreadyCheckedIn)
	}
	if err != nil {
		return postgres.MapError(err, "attendance", a.ID)
	}
	return nil
}

// ExistsBetween reports whether the user checked in at some instant in [start, end).
func (r *Repo) ExistsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
	if err != nil {
		return false, postgres.MapError(err, "attendance exists", userID)
	}
	return ok, nil
}
