package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report is the scored outcome for one user on one assignment.
type Report struct {
	ID             uint                                   `gorm:"primarykey" json:"id"`
	UserID         uuid.UUID                              `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reports_user_assignment"`
	AssignmentID   uint                                   `json:"assignment_id" gorm:"not null;uniqueIndex:idx_reports_user_assignment"`
	AssessmentID   uint                                   `json:"assessment_id" gorm:"not null;index"`
	AttemptID      uint                                   `json:"attempt_id" gorm:"not null"`
	Score          float64                                `json:"score"`
	MaxScore       float64                                `json:"max_score"`
	Percentage     float64                                `json:"percentage"`
	IsPassed       bool                                   `json:"is_passed"`
	CorrectAnswers int                                    `json:"correct_answers"`
	TotalQuestions int                                    `json:"total_questions"`
	Penalty        float64                                `json:"penalty"`
	SectionScores  datatypes.JSONType[map[string]float64] `json:"section_scores"`
	CreatedAt      time.Time                              `json:"created_at"`
	UpdatedAt      time.Time                              `json:"updated_at"`
}
