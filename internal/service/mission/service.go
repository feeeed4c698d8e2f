// Package mission drives the user mission state machine and pays the
// mission reward when a mission reaches REWARD_RECEIVED.
package mission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

type missionRepo interface {
	CreateMission(ctx context.Context, m *domain.Mission) (*domain.Mission, error)
	GetMission(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	CreateUserMission(ctx context.Context, um *domain.UserMission) error
	GetUserMission(ctx context.Context, userID, id uuid.UUID) (*domain.UserMission, error)
	GetUserMissionForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserMission, error)
	UpdateState(ctx context.Context, id uuid.UUID, state domain.UserMissionState, at time.Time) error
	AppendLog(ctx context.Context, l domain.UserMissionStateLog) error
	ListLogs(ctx context.Context, userMissionID uuid.UUID) ([]domain.UserMissionStateLog, error)
}

type rewardIssuer interface {
	Grant(ctx context.Context, g domain.RewardGrant) error
}

type recorder interface {
	MissionTransition(from, to domain.UserMissionState)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements mission business logic.
type Service struct {
	missions missionRepo
	rewards  rewardIssuer
	metrics  recorder
	tx       txManager
	log      *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new Mission service. loc decides the calendar day a
// mission reward is booked on; nil means time.Local.
func NewService(
	log *slog.Logger,
	missions missionRepo,
	rewards rewardIssuer,
	metrics recorder,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		missions: missions,
		rewards:  rewards,
		metrics:  metrics,
		tx:       tx,
		log:      log.With("service", "mission"),
		loc:      loc,
		now:      time.Now,
	}
}
