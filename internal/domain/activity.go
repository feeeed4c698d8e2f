package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is a daily check-in. A user has at most one per calendar day.
type Attendance struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AttendedOn time.Time
	CreatedAt  time.Time
}

// PraiseComment is a comment written on a peer praise post.
type PraiseComment struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	PraiseID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

// StudyDiary is a study-diary post.
type StudyDiary struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// RewardGrant is one ledger row of issued experience and points.
// (Source, SourceID, Cycle) is unique. Cycle is zero for sources that are
// rewarded once; user quests pass their reset cycle.
type RewardGrant struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Source    RewardSource
	SourceID  uuid.UUID
	GrantedOn time.Time
	Cycle     int
	Exp       int64
	Points    int64
	CreatedAt time.Time
}

// IsZero reports whether the grant carries nothing to issue.
func (g RewardGrant) IsZero() bool {
	return g.Exp == 0 && g.Points == 0
}
