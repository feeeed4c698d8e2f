package domain

import (
	"time"

	"github.com/google/uuid"
)

// Quest is a repeatable daily task template.
type Quest struct {
	ID        uuid.UUID
	Name      string
	URL       string
	Type      QuestType
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted reports whether the quest has been soft-deleted.
func (q *Quest) IsDeleted() bool {
	return q.DeletedAt != nil
}

// UserQuest is one user's assignment against a quest for the current day.
// There is no date column: ResetQuests clearing every flag starts a new day.
// Cycle counts the resets that cleared a completion; each cycle earns at most
// one reward.
type UserQuest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	QuestID     uuid.UUID
	Completed   bool
	CompletedAt *time.Time
	Cycle       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Complete flips the completion flag. It fails instead of no-opping so that a
// double submission is visible to the caller.
func (uq *UserQuest) Complete(now time.Time) error {
	if uq.Completed {
		return ErrQuestAlreadyCompleted
	}
	uq.Completed = true
	uq.CompletedAt = &now
	return nil
}

// Reset clears the completion flag and opens the next cycle. Resetting an
// incomplete quest is a no-op.
func (uq *UserQuest) Reset() {
	if !uq.Completed {
		return
	}
	uq.Cycle++
	uq.Completed = false
	uq.CompletedAt = nil
}

// QuestModifyParams holds the editable quest fields.
type QuestModifyParams struct {
	Name string
	URL  string
}

// UserQuestView joins a user quest with the quest and owner it refers to.
type UserQuestView struct {
	UserQuest
	Username  string
	QuestName string
	QuestType QuestType
	QuestURL  string
}
