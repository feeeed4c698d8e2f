// Package praise implements praise comment persistence using PostgreSQL.
package praise

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "praise_comments"

// Repo provides praise comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new praise comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateComment inserts a praise comment.
func (r *Repo) CreateComment(ctx context.Context, c domain.PraiseComment) error {
	_, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(table).
		Columns("id", "author_id", "praise_id", "content", "created_at").
		Values(c.ID, c.AuthorID, c.PraiseID, c.Content, c.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "praise_comment", c.ID)
	}
	return nil
}

// ExistsCommentBetween reports whether the user wrote a praise comment in [start, end).
func (r *Repo) ExistsCommentBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"author_id": userID}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
	if err != nil {
		return false, postgres.MapError(err, "praise_comment exists", userID)
	}
	return ok, nil
}
