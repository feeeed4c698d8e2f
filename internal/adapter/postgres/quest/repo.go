// Package quest implements the Quest repository using PostgreSQL.
package quest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "quests"

var columns = []string{"id", "name", "url", "type", "deleted_at", "created_at", "updated_at"}

// Repo provides quest template persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quest repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new quest.
func (r *Repo) Create(ctx context.Context, q *domain.Quest) (*domain.Quest, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(table).
		Columns("id", "name", "url", "type", "created_at", "updated_at").
		Values(q.ID, q.Name, q.URL, string(q.Type), q.CreatedAt, q.UpdatedAt).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, err
	}

	created, err := scanQuest(row)
	if err != nil {
		return nil, postgres.MapError(err, "quest", q.ID)
	}
	return created, nil
}

// GetByID returns a quest by primary key, including soft-deleted ones.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quest, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	q, err := scanQuest(row)
	if err != nil {
		return nil, postgres.MapError(err, "quest", id)
	}
	return q, nil
}

// Update changes name and url of an active quest.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.QuestModifyParams) (*domain.Quest, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(table).
		Set("name", p.Name).
		Set("url", p.URL).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, err
	}

	q, err := scanQuest(row)
	if err != nil {
		return nil, postgres.MapError(err, "quest", id)
	}
	return q, nil
}

// SoftDelete stamps deleted_at on an active quest. Already deleted or
// missing quests yield ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(table).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}))
	if err != nil {
		return postgres.MapError(err, "quest", id)
	}
	if n == 0 {
		return fmt.Errorf("quest %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListActive returns all non-deleted quests, oldest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Quest, error) {
	rows, err := postgres.QuerySq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	defer rows.Close()

	var out []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quest: %w", err)
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		q  domain.Quest
		qt string
	)
	if err := row.Scan(&q.ID, &q.Name, &q.URL, &qt, &q.DeletedAt, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	q.Type = domain.QuestType(qt)
	return &q, nil
}
