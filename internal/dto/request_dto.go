package dto

import (
	"encoding/json"
	"time"
)

// StartAttemptRequest carries the learner and scope. When a bearer token is
// present its claims take precedence over these fields.
type StartAttemptRequest struct {
	UserID      string `json:"userId" binding:"omitempty,uuid"`
	InstituteID uint   `json:"instituteId"`
	BatchID     uint   `json:"batchId"`
}

type SubmitAttemptRequest struct {
	Auto           bool `json:"auto"`
	TotalTimeSpent *int `json:"totalTimeSpent" binding:"omitempty,min=0"`
}

type UpdateAttemptMetaRequest struct {
	IPAddress      *string `json:"ipAddress" binding:"omitempty,max=45"`
	UserAgent      *string `json:"userAgent"`
	TotalTimeSpent *int    `json:"totalTimeSpent" binding:"omitempty,min=0"`
	Status         *string `json:"status"`
}

type RecordSubmissionRequest struct {
	AttemptID       uint   `json:"attemptId" binding:"required"`
	QuestionID      uint   `json:"questionId" binding:"required"`
	SelectedOptions []uint `json:"selectedOptions" binding:"required"`
}

type FinalSubmitRequest struct {
	AttemptID uint `json:"attemptId" binding:"required"`
}

type ProctoringLogInput struct {
	EventType string          `json:"eventType" binding:"required"`
	Timestamp *time.Time      `json:"timestamp" binding:"required"`
	Metadata  json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

type IngestProctoringLogsRequest struct {
	AttemptID uint                 `json:"attemptId" binding:"required"`
	Logs      []ProctoringLogInput `json:"logs" binding:"required,min=1,dive"`
}

type ListAttemptsQuery struct {
	Pagination
	UserID       string     `form:"userId" binding:"omitempty,uuid"`
	AssignmentID uint       `form:"assignmentId"`
	Status       string     `form:"status" binding:"omitempty,oneof=in_progress submitted auto_submitted abandoned"`
	From         *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To           *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ListReportsQuery struct {
	Pagination
	UserID       string `form:"userId" binding:"omitempty,uuid"`
	AssessmentID uint   `form:"assessmentId"`
}
