// Package reward implements the reward ledger using PostgreSQL.
package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const table = "reward_grants"

// Repo provides reward ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reward ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert appends a ledger row. It returns false without error when a row for
// the same (source, source_id, cycle) already exists.
func (r *Repo) Insert(ctx context.Context, g domain.RewardGrant) (bool, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "source", "source_id", "granted_on", "cycle", "exp", "points", "created_at").
		Values(g.ID, g.UserID, string(g.Source), g.SourceID, g.GrantedOn, g.Cycle, g.Exp, g.Points, g.CreatedAt).
		Suffix("ON CONFLICT (source, source_id, cycle) DO NOTHING RETURNING id"))
	if err != nil {
		return false, err
	}

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, postgres.MapError(err, "reward_grant", g.ID)
	}
	return true, nil
}

// ListByUser returns the user's ledger rows, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.RewardGrant, error) {
	rows, err := postgres.QuerySq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("id", "user_id", "source", "source_id", "granted_on", "cycle", "exp", "points", "created_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC"))
	if err != nil {
		return nil, postgres.MapError(err, "reward_grant list", userID)
	}
	defer rows.Close()

	var out []domain.RewardGrant
	for rows.Next() {
		var (
			g      domain.RewardGrant
			source string
		)
		if err := rows.Scan(&g.ID, &g.UserID, &source, &g.SourceID, &g.GrantedOn, &g.Cycle, &g.Exp, &g.Points, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reward_grant: %w", err)
		}
		g.Source = domain.RewardSource(source)
		out = append(out, g)
	}
	return out, rows.Err()
}
