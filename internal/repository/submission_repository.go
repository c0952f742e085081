package repository

import (
	"context"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository interface {
	// Upsert inserts or overwrites the answer for (attempt, question) and
	// refreshes s with the stored row.
	Upsert(ctx context.Context, s *model.Submission) error
	ListByAttempt(ctx context.Context, attemptID uint) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Upsert(ctx context.Context, s *model.Submission) error {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_options", "submitted_at"}),
	}).Create(s).Error
	if err != nil {
		return err
	}
	var stored model.Submission
	if err := db.Where("attempt_id = ? AND question_id = ?", s.AttemptID, s.QuestionID).First(&stored).Error; err != nil {
		return err
	}
	*s = stored
	return nil
}

func (r *submissionRepository) ListByAttempt(ctx context.Context, attemptID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("question_id ASC").
		Find(&subs).Error
	return subs, err
}
