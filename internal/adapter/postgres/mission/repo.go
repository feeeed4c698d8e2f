// Package mission implements mission, user mission and state log persistence
// using PostgreSQL.
package mission

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

const (
	missionsTable     = "missions"
	userMissionsTable = "user_missions"
	stateLogsTable    = "user_mission_state_logs"
)

var (
	missionColumns     = []string{"id", "title", "description", "reward_exp", "reward_points", "deleted_at", "created_at"}
	userMissionColumns = []string{"id", "user_id", "mission_id", "state", "created_at", "updated_at"}
	stateLogColumns    = []string{"id", "user_mission_id", "user_id", "prev_state", "next_state", "created_at"}
)

// Repo provides mission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Missions
// ---------------------------------------------------------------------------

// CreateMission inserts a new mission.
func (r *Repo) CreateMission(ctx context.Context, m *domain.Mission) (*domain.Mission, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(missionsTable).
		Columns("id", "title", "description", "reward_exp", "reward_points", "created_at").
		Values(m.ID, m.Title, m.Description, m.RewardExp, m.RewardPoints, m.CreatedAt).
		Suffix("RETURNING "+strings.Join(missionColumns, ", ")))
	if err != nil {
		return nil, err
	}

	created, err := scanMission(row)
	if err != nil {
		return nil, postgres.MapError(err, "mission", m.ID)
	}
	return created, nil
}

// GetMission returns a mission by primary key, including soft-deleted ones.
func (r *Repo) GetMission(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select(missionColumns...).
		From(missionsTable).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	m, err := scanMission(row)
	if err != nil {
		return nil, postgres.MapError(err, "mission", id)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// User missions
// ---------------------------------------------------------------------------

// CreateUserMission inserts a user's attempt at a mission. A second attempt
// at the same mission yields ErrAlreadyExists.
func (r *Repo) CreateUserMission(ctx context.Context, um *domain.UserMission) error {
	_, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(userMissionsTable).
		Columns(userMissionColumns...).
		Values(um.ID, um.UserID, um.MissionID, string(um.State), um.CreatedAt, um.UpdatedAt))
	if err != nil {
		return postgres.MapError(err, "user_mission", um.ID)
	}
	return nil
}

// GetUserMission returns a user mission owned by userID.
func (r *Repo) GetUserMission(ctx context.Context, userID, id uuid.UUID) (*domain.UserMission, error) {
	return r.getUserMission(ctx, userID, id, "")
}

// GetUserMissionForUpdate returns a user mission owned by userID and locks
// its row until the surrounding transaction ends.
func (r *Repo) GetUserMissionForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserMission, error) {
	return r.getUserMission(ctx, userID, id, "FOR UPDATE")
}

func (r *Repo) getUserMission(ctx context.Context, userID, id uuid.UUID, suffix string) (*domain.UserMission, error) {
	sel := postgres.Builder().
		Select(userMissionColumns...).
		From(userMissionsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	if suffix != "" {
		sel = sel.Suffix(suffix)
	}

	row, err := postgres.QueryRowSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), sel)
	if err != nil {
		return nil, err
	}

	um, err := scanUserMission(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_mission", id)
	}
	return um, nil
}

// UpdateState stores a new state for the user mission.
func (r *Repo) UpdateState(ctx context.Context, id uuid.UUID, state domain.UserMissionState, at time.Time) error {
	n, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Update(userMissionsTable).
		Set("state", string(state)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user_mission", id)
	}
	if n == 0 {
		return fmt.Errorf("user_mission %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// State logs (append-only)
// ---------------------------------------------------------------------------

// AppendLog inserts a state transition record.
func (r *Repo) AppendLog(ctx context.Context, l domain.UserMissionStateLog) error {
	_, err := postgres.ExecSq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Insert(stateLogsTable).
		Columns(stateLogColumns...).
		Values(l.ID, l.UserMissionID, l.UserID, string(l.PrevState), string(l.NextState), l.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "user_mission_state_log", l.ID)
	}
	return nil
}

// ListLogs returns the transitions of a user mission in the order they happened.
func (r *Repo) ListLogs(ctx context.Context, userMissionID uuid.UUID) ([]domain.UserMissionStateLog, error) {
	rows, err := postgres.QuerySq(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select(stateLogColumns...).
		From(stateLogsTable).
		Where(squirrel.Eq{"user_mission_id": userMissionID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "user_mission_state_log list", userMissionID)
	}
	defer rows.Close()

	var out []domain.UserMissionStateLog
	for rows.Next() {
		var (
			l          domain.UserMissionStateLog
			prev, next string
		)
		if err := rows.Scan(&l.ID, &l.UserMissionID, &l.UserID, &prev, &next, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user_mission_state_log: %w", err)
		}
		l.PrevState = domain.UserMissionState(prev)
		l.NextState = domain.UserMissionState(next)
		out = append(out, l)
	}
	return out, rows.Err()
}

// ExistsTransitionBetween reports whether the user entered state at some
// instant in [start, end).
func (r *Repo) ExistsTransitionBetween(ctx context.Context, userID uuid.UUID, state domain.UserMissionState, start, end time.Time) (bool, error) {
	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Builder().
		Select("1").
		From(stateLogsTable).
		Where(squirrel.Eq{"user_id": userID, "next_state": string(state)}).
		Where(squirrel.GtOrEq{"created_at": start}).
		Where(squirrel.Lt{"created_at": end}))
	if err != nil {
		return false, postgres.MapError(err, "user_mission_state_log exists", userID)
	}
	return ok, nil
}

func scanMission(row pgx.Row) (*domain.Mission, error) {
	var m domain.Mission
	if err := row.Scan(&m.ID, &m.Title, &m.Description, &m.RewardExp, &m.RewardPoints, &m.DeletedAt, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func scanUserMission(row pgx.Row) (*domain.UserMission, error) {
	var (
		um    domain.UserMission
		state string
	)
	if err := row.Scan(&um.ID, &um.UserID, &um.MissionID, &state, &um.CreatedAt, &um.UpdatedAt); err != nil {
		return nil, err
	}
	um.State = domain.UserMissionState(state)
	return &um, nil
}
