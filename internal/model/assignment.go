package model

import "time"

// AssessmentAssignment makes an assessment available to one institute batch.
type AssessmentAssignment struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	AssessmentID uint       `json:"assessment_id" gorm:"not null;index"`
	Assessment   Assessment `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	InstituteID  uint       `json:"institute_id" gorm:"not null;index:idx_assignments_institute_batch"`
	BatchID      uint       `json:"batch_id" gorm:"not null;index:idx_assignments_institute_batch"`
	CreatedAt    time.Time  `json:"created_at"`
}
