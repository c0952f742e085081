package model

import (
	"time"

	"gorm.io/datatypes"
)

type Submission struct {
	ID              uint                      `gorm:"primarykey" json:"id"`
	AttemptID       uint                      `json:"attempt_id" gorm:"not null;uniqueIndex:idx_submissions_attempt_question"`
	QuestionID      uint                      `json:"question_id" gorm:"not null;uniqueIndex:idx_submissions_attempt_question;index"`
	SelectedOptions datatypes.JSONSlice[uint] `json:"selected_options"`
	SubmittedAt     time.Time                 `json:"submitted_at"`
}
