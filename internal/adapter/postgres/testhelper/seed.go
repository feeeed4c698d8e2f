package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a regular user with zero experience and points.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an admin user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Username:  "user-" + suffix,
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedQuest creates an active quest of the given type.
func SeedQuest(t *testing.T, pool *pgxpool.Pool, qt domain.QuestType) domain.Quest {
	t.Helper()

	ts := now()
	q := domain.Quest{
		ID:        uuid.New(),
		Name:      "quest " + string(qt) + " " + uniqueSuffix(),
		URL:       "/quests/" + string(qt),
		Type:      qt,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO quests (id, name, url, type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		q.ID, q.Name, q.URL, string(q.Type), q.CreatedAt, q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuest: %v", err)
	}
	return q
}

// SoftDeleteQuest marks a seeded quest as deleted.
func SoftDeleteQuest(t *testing.T, pool *pgxpool.Pool, questID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE quests SET deleted_at = now() WHERE id = $1`, questID,
	); err != nil {
		t.Fatalf("testhelper: SoftDeleteQuest: %v", err)
	}
}

// SeedUserQuest assigns a quest to a user with the given completion flag.
func SeedUserQuest(t *testing.T, pool *pgxpool.Pool, userID, questID uuid.UUID, completed bool) domain.UserQuest {
	t.Helper()

	ts := now()
	uq := domain.UserQuest{
		ID:        uuid.New(),
		UserID:    userID,
		QuestID:   questID,
		Completed: completed,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if completed {
		uq.CompletedAt = &ts
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_quests (id, user_id, quest_id, completed, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uq.ID, uq.UserID, uq.QuestID, uq.Completed, uq.CompletedAt, uq.CreatedAt, uq.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserQuest: %v", err)
	}
	return uq
}

// SeedMission creates a mission with the given reward.
func SeedMission(t *testing.T, pool *pgxpool.Pool, exp, points int64) domain.Mission {
	t.Helper()

	m := domain.Mission{
		ID:           uuid.New(),
		Title:        "mission " + uniqueSuffix(),
		Description:  "seeded",
		RewardExp:    exp,
		RewardPoints: points,
		CreatedAt:    now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO missions (id, title, description, reward_exp, reward_points, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Title, m.Description, m.RewardExp, m.RewardPoints, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMission: %v", err)
	}
	return m
}

// SeedUserMission creates a user mission in the given state without logs.
func SeedUserMission(t *testing.T, pool *pgxpool.Pool, userID, missionID uuid.UUID, state domain.UserMissionState) domain.UserMission {
	t.Helper()

	ts := now()
	um := domain.UserMission{
		ID:        uuid.New(),
		UserID:    userID,
		MissionID: missionID,
		State:     state,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_missions (id, user_id, mission_id, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		um.ID, um.UserID, um.MissionID, string(um.State), um.CreatedAt, um.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserMission: %v", err)
	}
	return um
}

// SeedStateLog appends a state log row with an explicit timestamp.
func SeedStateLog(t *testing.T, pool *pgxpool.Pool, um domain.UserMission, prev, next domain.UserMissionState, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_mission_state_logs (id, user_mission_id, user_id, prev_state, next_state, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), um.ID, um.UserID, string(prev), string(next), at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStateLog: %v", err)
	}
}

// SeedAttendance records a check-in at the given instant. attended_on is the
// calendar day of at in loc.
func SeedAttendance(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, at time.Time, loc *time.Location) {
	t.Helper()

	day := domain.DayOf(at, loc)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO attendances (id, user_id, attended_on, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New(), userID, day, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttendance: %v", err)
	}
}

// SeedPraiseComment writes a praise comment at the given instant.
func SeedPraiseComment(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO praise_comments (id, author_id, praise_id, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), authorID, uuid.New(), "nice work", at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPraiseComment: %v", err)
	}
}

// SeedDiary writes a study diary at the given instant.
func SeedDiary(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_diaries (id, author_id, title, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), authorID, "today", "learned goroutines", at,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDiary: %v", err)
	}
}

// UserBalance returns the stored experience and points of a user.
func UserBalance(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) (exp, points int64) {
	t.Helper()

	err := pool.QueryRow(context.Background(),
		`SELECT experience, points FROM users WHERE id = $1`, userID,
	).Scan(&exp, &points)
	if err != nil {
		t.Fatalf("testhelper: UserBalance: %v", err)
	}
	return exp, points
}

// RewardGrantCount returns the number of ledger rows for one reward source.
func RewardGrantCount(t *testing.T, pool *pgxpool.Pool, source domain.RewardSource, sourceID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM reward_grants WHERE source = $1 AND source_id = $2`, string(source), sourceID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: RewardGrantCount: %v", err)
	}
	return n
}
