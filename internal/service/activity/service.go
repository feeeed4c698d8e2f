// Package activity records the user actions that daily quests look for:
// attendance check-ins, praise comments and study diaries.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

type attendanceRepo interface {
	Create(ctx context.Context, a domain.Attendance) error
}

type praiseRepo interface {
	CreateComment(ctx context.Context, c domain.PraiseComment) error
}

type diaryRepo interface {
	Create(ctx context.Context, d domain.StudyDiary) error
}

type rewardIssuer interface {
	Grant(ctx context.Context, g domain.RewardGrant) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the attendance reward and the day boundary.
type Config struct {
	Location         *time.Location
	AttendanceExp    int64
	AttendancePoints int64
}

// Service implements activity business logic.
type Service struct {
	attendance attendanceRepo
	praise     praiseRepo
	diaries    diaryRepo
	rewards    rewardIssuer
	tx         txManager
	log        *slog.Logger
	cfg        Config
	now        func() time.Time
}

// NewService creates a new Activity service.
func NewService(
	log *slog.Logger,
	attendance attendanceRepo,
	praise praiseRepo,
	diaries diaryRepo,
	rewards rewardIssuer,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		attendance: attendance,
		praise:     praise,
		diaries:    diaries,
		rewards:    rewards,
		tx:         tx,
		log:        log.With("service", "activity"),
		cfg:        cfg,
		now:        time.Now,
	}
}
