package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mission is a multi-step assignment with a fixed reward.
type Mission struct {
	ID           uuid.UUID
	Title        string
	Description  string
	RewardExp    int64
	RewardPoints int64
	DeletedAt    *time.Time
	CreatedAt    time.Time
}

// IsDeleted reports whether the mission has been soft-deleted.
func (m *Mission) IsDeleted() bool {
	return m.DeletedAt != nil
}

// UserMission is a user's attempt at a mission.
type UserMission struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MissionID uuid.UUID
	State     UserMissionState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserMissionStateLog records one state transition of a user mission.
type UserMissionStateLog struct {
	ID            uuid.UUID
	UserMissionID uuid.UUID
	UserID        uuid.UUID
	PrevState     UserMissionState
	NextState     UserMissionState
	CreatedAt     time.Time
}

var missionTransitions = map[UserMissionState][]UserMissionState{
	UserMissionStateNotStarted:        {UserMissionStateInProgress},
	UserMissionStateInProgress:        {UserMissionStateAborted, UserMissionStateCompleted},
	UserMissionStateCompleted:         {UserMissionStateInFeedback},
	UserMissionStateInFeedback:        {UserMissionStateFeedbackCompleted},
	UserMissionStateFeedbackCompleted: {UserMissionStateRewardReceived},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s UserMissionState) CanTransitionTo(next UserMissionState) bool {
	for _, allowed := range missionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves the mission to next and returns the log entry describing it.
// Re-entering REWARD_RECEIVED yields ErrRewardAlreadyReceived; any other
// illegal move yields *InvalidMissionStateError.
func (m *UserMission) Transition(next UserMissionState, now time.Time) (UserMissionStateLog, error) {
	if next == UserMissionStateRewardReceived && m.State == UserMissionStateRewardReceived {
		return UserMissionStateLog{}, ErrRewardAlreadyReceived
	}
	if !m.State.CanTransitionTo(next) {
		return UserMissionStateLog{}, &InvalidMissionStateError{From: m.State, To: next}
	}

	entry := UserMissionStateLog{
		ID:            uuid.New(),
		UserMissionID: m.ID,
		UserID:        m.UserID,
		PrevState:     m.State,
		NextState:     next,
		CreatedAt:     now,
	}
	m.State = next
	m.UpdatedAt = now
	return entry, nil
}
