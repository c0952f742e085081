package repository

import (
	"context"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	FindByID(ctx context.Context, id uint) (*model.AssessmentAssignment, error)
	// FindInScope returns the assignment only if it belongs to the institute and batch.
	FindInScope(ctx context.Context, id, instituteID, batchID uint) (*model.AssessmentAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) FindByID(ctx context.Context, id uint) (*model.AssessmentAssignment, error) {
	var a model.AssessmentAssignment
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) FindInScope(ctx context.Context, id, instituteID, batchID uint) (*model.AssessmentAssignment, error) {
	var a model.AssessmentAssignment
	err := r.db.WithContext(ctx).
		Where("id = ? AND institute_id = ? AND batch_id = ?", id, instituteID, batchID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
