package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a community member who accrues experience and points.
type User struct {
	ID         uuid.UUID
	Username   string
	Name       string
	Role       UserRole
	Experience int64
	Points     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
