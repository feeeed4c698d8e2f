// Package quest implements daily quests: admin template management,
// assignment, validated completion and the daily reset.
package quest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questRepo interface {
	Create(ctx context.Context, q *domain.Quest) (*domain.Quest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quest, error)
	Update(ctx context.Context, id uuid.UUID, p domain.QuestModifyParams) (*domain.Quest, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type userQuestRepo interface {
	AssignMissing(ctx context.Context, userID uuid.UUID, at time.Time) ([]domain.UserQuest, error)
	GetByIDForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.UserQuest, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
	ResetAll(ctx context.Context, at time.Time) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserQuestView, error)
	GetView(ctx context.Context, id uuid.UUID) (*domain.UserQuestView, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type rewardIssuer interface {
	Grant(ctx context.Context, g domain.RewardGrant) error
}

type recorder interface {
	QuestCompleted(t domain.QuestType)
	QuestRejected(t domain.QuestType)
	QuestsReset(n int64)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds quest reward and day-boundary settings.
type Config struct {
	Location     *time.Location
	RewardExp    int64
	RewardPoints int64
}

// Service implements the quest business logic.
type Service struct {
	quests     questRepo
	userQuests userQuestRepo
	users      userRepo
	registry   *Registry
	rewards    rewardIssuer
	metrics    recorder
	tx         txManager
	log        *slog.Logger
	cfg        Config
	now        func() time.Time
}

// NewService creates a new Quest service.
func NewService(
	log *slog.Logger,
	quests questRepo,
	userQuests userQuestRepo,
	users userRepo,
	registry *Registry,
	rewards rewardIssuer,
	metrics recorder,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		quests:     quests,
		userQuests: userQuests,
		users:      users,
		registry:   registry,
		rewards:    rewards,
		metrics:    metrics,
		tx:         tx,
		log:        log.With("service", "quest"),
		cfg:        cfg,
		now:        time.Now,
	}
}
