package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres"
	attendancerepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/attendance"
	diaryrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/diary"
	missionrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/mission"
	praiserepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/praise"
	questrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/quest"
	rewardrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/reward"
	userrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/user"
	userquestrepo "github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/adapter/postgres/userquest"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/config"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/metrics"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/activity"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/mission"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/quest"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/service/reward"
)

// Services is the wired business layer shared by the HTTP server and
// questctl.
type Services struct {
	Quest    *quest.Service
	Mission  *mission.Service
	Activity *activity.Service
	Registry *quest.Registry
	Users    *userrepo.Repo
}

// NewServices builds repositories and services on top of pool. It fails
// when a quest type has no validator.
func NewServices(log *slog.Logger, pool *pgxpool.Pool, cfg *config.Config, m *metrics.Collector) (*Services, error) {
	loc, err := domain.ParseTimezone(cfg.Quest.Timezone)
	if err != nil {
		return nil, fmt.Errorf("quest config: %w", err)
	}
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	quests := questrepo.New(pool)
	userQuests := userquestrepo.New(pool)
	missions := missionrepo.New(pool)
	attendance := attendancerepo.New(pool)
	praise := praiserepo.New(pool)
	diaries := diaryrepo.New(pool)

	issuer := reward.NewIssuer(log, rewardrepo.New(pool), users, m)

	registry, err := quest.NewRegistry(quest.NewValidators(
		quest.NewDayClock(loc),
		attendance,
		userQuests,
		missions,
		praise,
		diaries,
	))
	if err != nil {
		return nil, fmt.Errorf("quest registry: %w", err)
	}

	return &Services{
		Quest: quest.NewService(log, quests, userQuests, users, registry, issuer, m, tx, quest.Config{
			Location:     loc,
			RewardExp:    cfg.Quest.RewardExp,
			RewardPoints: cfg.Quest.RewardPoints,
		}),
		Mission: mission.NewService(log, missions, issuer, m, tx, loc),
		Activity: activity.NewService(log, attendance, praise, diaries, issuer, tx, activity.Config{
			Location:         loc,
			AttendanceExp:    cfg.Attendance.RewardExp,
			AttendancePoints: cfg.Attendance.RewardPoints,
		}),
		Registry: registry,
		Users:    users,
	}, nil
}
