// Package userquest implements the UserQuest repository using PostgreSQL.
// It owns the per-user quest assignments and their daily completion flags.
package userquest

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

const table = "user_quests"

var columns = []string{"id", "user_id", "quest_id", "completed", "completed_at", "cycle", "created_at", "updated_at"}

// Repo provides user quest persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user quest repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// AssignMissing creates a user quest for every active quest the user does not
// hold yet and returns only the rows it inserted.
func (r *Repo) AssignMissing(ctx context.Context, userID uuid.UUID, at time.Time) ([]domain.UserQuest, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder().
		Select().
		Column("gen_random_uuid()").
		Column("?::uuid", userID).
		Column("q.id").
		Column("false").
		Column("?::timestamptz", at).
		Column("?::timestamptz", at).
		From("quests q").
		Where(squirrel.Eq{"q.deleted_at": nil}).
		OrderBy("q.created_at ASC", "q.id ASC")

	rows, err := postgres.QuerySq(ctx, q, postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "quest_id", "completed", "created_at", "updated_at").
		Select(sel).
		Suffix("ON CONFLICT (user_id, quest_id) DO NOTHING RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "user_quest assign", userID)
	}
	defer rows.Close()

	var out []domain.UserQuest
	for rows.Next() {
		uq, err := scanUserQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user_quest: %w", err)
		}
		out = append(out, *uq)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user_quest assign", userID)
	}
	return out, nil
}

// GetByIDForUpdate loads a user quest owned by userID and locks its row until
// the surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserQuest, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("FOR UPDATE"))
	if err != nil {
		return nil, err
	}

	uq, err := scanUserQuest(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_quest", id)
	}
	return uq, nil
}

// MarkCompleted sets the completion flag if it is still clear.
// A row that is already completed yields ErrQuestAlreadyCompleted.
func (r *Repo) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(table).
		Set("completed", true).
		Set("completed_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "completed": false}))
	if err != nil {
		return postgres.MapError(err, "user_quest", id)
	}
	if n == 0 {
		return fmt.Errorf("user_quest %s: %w", id, domain.ErrQuestAlreadyCompleted)
	}
	return nil
}

// ResetAll clears every completion flag and moves those rows to their next
// reward cycle. It must run inside a transaction:
// the EXCLUSIVE table lock waits for completions holding row locks and blocks
// new ones until commit.
func (r *Repo) ResetAll(ctx context.Context, at time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, "LOCK TABLE "+table+" IN EXCLUSIVE MODE"); err != nil {
		return 0, fmt.Errorf("lock user_quests: %w", err)
	}

	n, err := postgres.ExecSq(ctx, q, postgres.Builder().
		Update(table).
		Set("completed", false).
		Set("completed_at", nil).
		Set("cycle", squirrel.Expr("cycle + 1")).
		Set("updated_at", at).
		Where(squirrel.Eq{"completed": true}))
	if err != nil {
		return 0, fmt.Errorf("reset user_quests: %w", err)
	}
	return n, nil
}

// ListByUser returns the user's quests joined with their quest, skipping
// soft-deleted quests.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserQuestView, error) {
	rows, err := postgres.QuerySq(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		viewQuery().
			Where(squirrel.Eq{"uq.user_id": userID, "q.deleted_at": nil}).
			OrderBy("q.created_at ASC", "uq.id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "user_quest list", userID)
	}
	defer rows.Close()

	var out []domain.UserQuestView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user_quest view: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// GetView returns one user quest joined with its quest and owner.
func (r *Repo) GetView(ctx context.Context, id uuid.UUID) (*domain.UserQuestView, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		viewQuery().Where(squirrel.Eq{"uq.id": id}))
	if err != nil {
		return nil, err
	}

	v, err := scanView(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_quest", id)
	}
	return v, nil
}

// ExistsCompletedByUser reports whether any of the user's quests is completed.
func (r *Repo) ExistsCompletedByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "completed": true}))
	if err != nil {
		return false, postgres.MapError(err, "user_quest exists", userID)
	}
	return ok, nil
}

func viewQuery() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"uq.id", "uq.user_id", "uq.quest_id", "uq.completed", "uq.completed_at", "uq.cycle", "uq.created_at", "uq.updated_at",
			"u.username", "q.name", "q.type", "q.url",
		).
		From(table + " uq").
		Join("quests q ON q.id = uq.quest_id").
		Join("users u ON u.id = uq.user_id")
}

func scanUserQuest(row pgx.Row) (*domain.UserQuest, error) {
	var uq domain.UserQuest
	if err := row.Scan(&uq.ID, &uq.UserID, &uq.QuestID, &uq.Completed, &uq.CompletedAt, &uq.Cycle, &uq.CreatedAt, &uq.UpdatedAt); err != nil {
		return nil, err
	}
	return &uq, nil
}

func scanView(row pgx.Row) (*domain.UserQuestView, error) {
	var (
		v  domain.UserQuestView
		qt string
	)
	err := row.Scan(
		&v.ID, &v.UserID, &v.QuestID, &v.Completed, &v.CompletedAt, &v.Cycle, &v.CreatedAt, &v.UpdatedAt,
		&v.Username, &v.QuestName, &qt, &v.QuestURL,
	)
	if err != nil {
		return nil, err
	}
	v.QuestType = domain.QuestType(qt)
	return &v, nil
}
