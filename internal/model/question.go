package model

import (
	"time"
)

type QuestionType string

const (
	QuestionSingleCorrect QuestionType = "single_correct"
	QuestionMultiCorrect  QuestionType = "multi_correct"
)

type Question struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	SectionID     uint         `json:"section_id" gorm:"not null;index:idx_questions_section"`
	Type          QuestionType `json:"type" gorm:"size:32;not null"`
	Text          string       `json:"text" gorm:"type:text"`
	QuestionOrder int          `json:"question_order" gorm:"not null;default:1;index:idx_questions_section"`
	Marks         float64      `json:"marks"`
	NegativeMarks float64      `json:"negative_marks"`
	Options       []Option     `json:"options,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
	CreatedAt     time.Time    `json:"created_at"`
}

type Option struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	QuestionID  uint      `json:"question_id" gorm:"not null;index"`
	OptionText  string    `json:"option_text" gorm:"type:text;not null"`
	IsCorrect   bool      `json:"is_correct" gorm:"default:false"`
	OptionOrder int       `json:"option_order" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Option) TableName() string { return "question_options" }
