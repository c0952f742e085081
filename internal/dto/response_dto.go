package dto

import (
	"time"

	"github.com/google/uuid"
)

type AttemptResponse struct {
	ID             uint       `json:"id"`
	AssignmentID   uint       `json:"assignmentId"`
	UserID         uuid.UUID  `json:"userId"`
	AttemptNumber  int        `json:"attemptNumber"`
	Status         string     `json:"status"`
	StartedAt      time.Time  `json:"startedAt"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
	IPAddress      *string    `json:"ipAddress,omitempty"`
	UserAgent      *string    `json:"userAgent,omitempty"`
	TotalTimeSpent *int       `json:"totalTimeSpent,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type SubmissionResponse struct {
	ID              uint      `json:"id"`
	AttemptID       uint      `json:"attemptId"`
	QuestionID      uint      `json:"questionId"`
	SelectedOptions []uint    `json:"selectedOptions"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type QuestionResult struct {
	QuestionID   uint    `json:"questionId"`
	SectionID    uint    `json:"sectionId"`
	Answered     bool    `json:"answered"`
	Correct      bool    `json:"correct"`
	MarksAwarded float64 `json:"marksAwarded"`
}

// ScoreResult is the breakdown produced by one scoring run.
type ScoreResult struct {
	AttemptID        uint               `json:"attemptId"`
	ReportID         uint               `json:"reportId"`
	Score            float64            `json:"score"`
	RawScore         float64            `json:"rawScore"`
	Penalty          float64            `json:"penalty"`
	MaxPossibleScore float64            `json:"maxPossibleScore"`
	Percentage       float64            `json:"percentage"`
	IsPassed         bool               `json:"isPassed"`
	CorrectAnswers   int                `json:"correctAnswers"`
	TotalQuestions   int                `json:"totalQuestions"`
	SectionScores    map[string]float64 `json:"sectionScores"`
	Questions        []QuestionResult   `json:"questions,omitempty"`
}

type FinalSubmitResponse struct {
	Message string          `json:"message"`
	Attempt AttemptResponse `json:"attempt"`
	Result  ScoreResult     `json:"result"`
}

type ReportResponse struct {
	ID             uint               `json:"id"`
	UserID         uuid.UUID          `json:"userId"`
	AssignmentID   uint               `json:"assignmentId"`
	AssessmentID   uint               `json:"assessmentId"`
	AttemptID      uint               `json:"attemptId"`
	Score          float64            `json:"score"`
	MaxScore       float64            `json:"maxScore"`
	Percentage     float64            `json:"percentage"`
	IsPassed       bool               `json:"isPassed"`
	CorrectAnswers int                `json:"correctAnswers"`
	TotalQuestions int                `json:"totalQuestions"`
	Penalty        float64            `json:"penalty"`
	SectionScores  map[string]float64 `json:"sectionScores"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse carries the error kind and a detail safe for clients.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details string   `json:"details"`
	Fields  []string `json:"fields,omitempty"`
}
