package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// QuestValidator decides whether a user quest's condition is satisfied.
// Implementations are read-only and return false, not an error, when the
// evidence is missing.
type QuestValidator interface {
	IsValid(ctx context.Context, uq domain.UserQuest) (bool, error)
}

type attendanceChecker interface {
	ExistsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}

type completedQuestChecker interface {
	ExistsCompletedByUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

type missionTransitionChecker interface {
	ExistsTransitionBetween(ctx context.Context, userID uuid.UUID, state domain.UserMissionState, start, end time.Time) (bool, error)
}

type praiseCommentChecker interface {
	ExistsCommentBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}

type diaryChecker interface {
	ExistsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
}

// DayClock yields "today" as a half-open window in a fixed location.
type DayClock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewDayClock returns a DayClock on the wall clock. A nil loc means time.Local.
func NewDayClock(loc *time.Location) DayClock {
	if loc == nil {
		loc = time.Local
	}
	return DayClock{Now: time.Now, Location: loc}
}

// Today returns [start of today, start of tomorrow) evaluated now.
func (c DayClock) Today() (start, end time.Time) {
	return domain.DayWindow(c.Now(), c.Location)
}

// AttendanceValidator passes when the user checked in today.
type AttendanceValidator struct {
	repo  attendanceChecker
	clock DayClock
}

// NewAttendanceValidator creates an AttendanceValidator.
func NewAttendanceValidator(repo attendanceChecker, clock DayClock) *AttendanceValidator {
	return &AttendanceValidator{repo: repo, clock: clock}
}

func (v *AttendanceValidator) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	start, end := v.clock.Today()
	ok, err := v.repo.ExistsBetween(ctx, uq.UserID, start, end)
	if err != nil {
		return false, fmt.Errorf("check attendance: %w", err)
	}
	return ok, nil
}

// QuestClearValidator passes when any of the user's quests is completed.
// It does not exclude the quest being evaluated and ignores the day.
type QuestClearValidator struct {
	repo completedQuestChecker
}

// NewQuestClearValidator creates a QuestClearValidator.
func NewQuestClearValidator(repo completedQuestChecker) *QuestClearValidator {
	return &QuestClearValidator{repo: repo}
}

func (v *QuestClearValidator) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	ok, err := v.repo.ExistsCompletedByUser(ctx, uq.UserID)
	if err != nil {
		return false, fmt.Errorf("check completed quests: %w", err)
	}
	return ok, nil
}

// MissionRewardValidator passes when the user received a mission reward today.
type MissionRewardValidator struct {
	repo  missionTransitionChecker
	clock DayClock
}

// NewMissionRewardValidator creates a MissionRewardValidator.
func NewMissionRewardValidator(repo missionTransitionChecker, clock DayClock) *MissionRewardValidator {
	return &MissionRewardValidator{repo: repo, clock: clock}
}

func (v *MissionRewardValidator) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	start, end := v.clock.Today()
	ok, err := v.repo.ExistsTransitionBetween(ctx, uq.UserID, domain.UserMissionStateRewardReceived, start, end)
	if err != nil {
		return false, fmt.Errorf("check mission reward log: %w", err)
	}
	return ok, nil
}

// PraiseCommentValidator passes when the user wrote a praise comment today.
type PraiseCommentValidator struct {
	repo  praiseCommentChecker
	clock DayClock
}

// NewPraiseCommentValidator creates a PraiseCommentValidator.
func NewPraiseCommentValidator(repo praiseCommentChecker, clock DayClock) *PraiseCommentValidator {
	return &PraiseCommentValidator{repo: repo, clock: clock}
}

func (v *PraiseCommentValidator) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	start, end := v.clock.Today()
	ok, err := v.repo.ExistsCommentBetween(ctx, uq.UserID, start, end)
	if err != nil {
		return false, fmt.Errorf("check praise comments: %w", err)
	}
	return ok, nil
}

// WriteDiaryValidator passes when the user wrote a study diary today.
type WriteDiaryValidator struct {
	repo  diaryChecker
	clock DayClock
}

// NewWriteDiaryValidator creates a WriteDiaryValidator.
func NewWriteDiaryValidator(repo diaryChecker, clock DayClock) *WriteDiaryValidator {
	return &WriteDiaryValidator{repo: repo, clock: clock}
}

func (v *WriteDiaryValidator) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	start, end := v.clock.Today()
	ok, err := v.repo.ExistsBetween(ctx, uq.UserID, start, end)
	if err != nil {
		return false, fmt.Errorf("check study diaries: %w", err)
	}
	return ok, nil
}
