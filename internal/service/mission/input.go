package mission

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// CreateMissionInput holds the parameters for creating a mission.
type CreateMissionInput struct {
	Title        string
	Description  string
	RewardExp    int64
	RewardPoints int64
}

// Validate checks all fields and collects all errors.
func (i CreateMissionInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.RewardExp < 0 {
		errs = append(errs, domain.FieldError{Field: "reward_exp", Message: "must be >= 0"})
	}
	if i.RewardPoints < 0 {
		errs = append(errs, domain.FieldError{Field: "reward_points", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StartMissionInput holds the parameters for starting a mission.
type StartMissionInput struct {
	MissionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StartMissionInput) Validate() error {
	if i.MissionID == uuid.Nil {
		return domain.NewValidationError("mission_id", "required")
	}
	return nil
}

// ChangeStateInput holds the parameters for moving a user mission.
type ChangeStateInput struct {
	UserMissionID uuid.UUID
	Next          domain.UserMissionState
}

// Validate checks all fields and collects all errors.
func (i ChangeStateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserMissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_mission_id", Message: "required"})
	}
	if !i.Next.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "unknown mission state"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReceiveRewardInput holds the parameters for claiming a mission reward.
type ReceiveRewardInput struct {
	UserMissionID uuid.UUID
}

// UserMissionInput identifies one of the caller's user missions.
type UserMissionInput struct {
	UserMissionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UserMissionInput) Validate() error {
	if i.UserMissionID == uuid.Nil {
		return domain.NewValidationError("user_mission_id", "required")
	}
	return nil
}
