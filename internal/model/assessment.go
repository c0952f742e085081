package model

import (
	"time"
)

type AssessmentStatus string

const (
	AssessmentDraft    AssessmentStatus = "draft"
	AssessmentActive   AssessmentStatus = "active"
	AssessmentInactive AssessmentStatus = "inactive"
	AssessmentArchived AssessmentStatus = "archived"
)

// ScoringPolicy selects how multi_correct questions are marked.
type ScoringPolicy string

const (
	ScoringExact   ScoringPolicy = "exact"
	ScoringPartial ScoringPolicy = "partial"
)

type Assessment struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	Title           string           `json:"title" gorm:"size:255;not null"`
	Description     string           `json:"description,omitempty" gorm:"type:text"`
	Duration        int              `json:"duration" gorm:"not null;default:85"` // minutes
	TotalMarks      float64          `json:"total_marks" gorm:"not null;default:100"`
	PassingMarks    *float64         `json:"passing_marks,omitempty"`
	AttemptsAllowed int              `json:"attempts_allowed" gorm:"not null;default:1"`
	StartTime       *time.Time       `json:"start_time,omitempty"`
	EndTime         *time.Time       `json:"end_time,omitempty"`
	Status          AssessmentStatus `json:"status" gorm:"size:16;default:'draft'"`
	IsProctored     bool             `json:"is_proctored" gorm:"default:false"`
	ScoringPolicy   ScoringPolicy    `json:"scoring_policy" gorm:"size:16;default:'exact'"`
	InstituteID     *uint            `json:"institute_id,omitempty" gorm:"index"`
	Sections        []Section        `json:"sections,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE;"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type Section struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	AssessmentID uint       `json:"assessment_id" gorm:"not null;uniqueIndex:idx_sections_assessment_order"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Description  string     `json:"description,omitempty" gorm:"type:text"`
	SectionOrder int        `json:"section_order" gorm:"not null;uniqueIndex:idx_sections_assessment_order"`
	Marks        float64    `json:"marks" gorm:"default:0"`
	TimeLimit    *int       `json:"time_limit,omitempty"` // minutes
	Weightage    float64    `json:"weightage" gorm:"default:1"`
	Questions    []Question `json:"questions,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE;"`
	CreatedAt    time.Time  `json:"created_at"`
}
