package repository

import (
	"context"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Assessment, error)
	// FindWithAnswerKey loads sections, questions and options in display order.
	FindWithAnswerKey(ctx context.Context, id uint) (*model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) FindByID(ctx context.Context, id uint) (*model.Assessment, error) {
	var a model.Assessment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) FindWithAnswerKey(ctx context.Context, id uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("section_order ASC")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC, id ASC")
		}).
		Preload("Sections.Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order ASC, id ASC")
		}).
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
