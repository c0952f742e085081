package model

import (
	"time"

	"github.com/google/uuid"
)

type AttemptStatus string

const (
	AttemptInProgress    AttemptStatus = "in_progress"
	AttemptSubmitted     AttemptStatus = "submitted"
	AttemptAutoSubmitted AttemptStatus = "auto_submitted"
	AttemptAbandoned     AttemptStatus = "abandoned"
)

// Terminal reports whether no further transition is allowed out of s.
func (s AttemptStatus) Terminal() bool {
	return s == AttemptSubmitted || s == AttemptAutoSubmitted || s == AttemptAbandoned
}

// Completed reports whether the attempt was handed in and can be scored.
func (s AttemptStatus) Completed() bool {
	return s == AttemptSubmitted || s == AttemptAutoSubmitted
}

type Attempt struct {
	ID             uint          `gorm:"primarykey" json:"id"`
	AssignmentID   uint          `json:"assignment_id" gorm:"not null;index:idx_attempts_assignment_user;uniqueIndex:idx_attempts_assignment_user_number"`
	UserID         uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index:idx_attempts_assignment_user;uniqueIndex:idx_attempts_assignment_user_number"`
	AttemptNumber  int           `json:"attempt_number" gorm:"not null;uniqueIndex:idx_attempts_assignment_user_number"`
	Status         AttemptStatus `json:"status" gorm:"size:16;not null;default:'in_progress';index"`
	StartedAt      time.Time     `json:"started_at"`
	SubmittedAt    *time.Time    `json:"submitted_at,omitempty"`
	IPAddress      *string       `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent      *string       `json:"user_agent,omitempty" gorm:"type:text"`
	TotalTimeSpent *int          `json:"total_time_spent,omitempty"` // seconds
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
