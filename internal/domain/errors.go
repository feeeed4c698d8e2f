package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrDeleted       = errors.New("deleted")
)

// Conflict and invalid-state errors raised by the quest and mission engines.
var (
	ErrQuestAlreadyCompleted = fmt.Errorf("quest already completed: %w", ErrConflict)
	ErrQuestNotCompletable   = fmt.Errorf("quest is not completable yet: %w", ErrInvalidState)
	ErrRewardAlreadyReceived = fmt.Errorf("mission reward already received: %w", ErrConflict)
	ErrRewardAlreadyGranted  = fmt.Errorf("reward already granted: %w", ErrConflict)
	ErrAlreadyCheckedIn      = fmt.Errorf("attendance already checked today: %w", ErrConflict)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvalidMissionStateError reports a mission transition that the state
// machine does not allow from the current state.
type InvalidMissionStateError struct {
	From UserMissionState
	To   UserMissionState
}

func (e *InvalidMissionStateError) Error() string {
	return fmt.Sprintf("invalid user mission state transition %s -> %s", e.From, e.To)
}

func (e *InvalidMissionStateError) Unwrap() error { return ErrInvalidState }

// UnregisteredQuestTypeError means a quest type has no validator. It is a
// configuration error and is never mapped to a client-facing category.
type UnregisteredQuestTypeError struct {
	Type QuestType
}

func (e *UnregisteredQuestTypeError) Error() string {
	return fmt.Sprintf("no validator registered for quest type %q", string(e.Type))
}
