// Package diary implements study diary persistence using PostgreSQL.
package diary

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "study_diaries"

// Repo provides study diary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study diary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a study diary.
func (r *Repo) Create(ctx context.Context, d domain.StudyDiary) error {
	_, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(table).
		Columns("id", "author_id", "title", "content", "created_at").
		Values(d.ID, d.AuthorID, d.Title, d.Content, d.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "study_diary", d.ID)
	}
	return nil
}

// ExistsBetween reports whether the user wrote a diary in [start, end).
func (r *Repo) ExistsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"author_id": userID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
	if err != nil {
		return false, postgres.MapError(err, "study_diary exists", userID)
	}
	return ok, nil
}
