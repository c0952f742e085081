package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportFilter struct {
	UserID       *uuid.UUID
	AssessmentID uint
}

type ReportRepository interface {
	// Upsert writes the report keyed by (user, assignment) and refreshes r
	// with the stored row, including its id.
	Upsert(ctx context.Context, r *model.Report) error
	FindByID(ctx context.Context, id uint) (*model.Report, error)
	List(ctx context.Context, filter ReportFilter, limit, offset int) ([]model.Report, int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Upsert(ctx context.Context, report *model.Report) error {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "assignment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"assessment_id", "attempt_id", "score", "max_score", "percentage", "is_passed",
			"correct_answers", "total_questions", "penalty", "section_scores", "updated_at",
		}),
	}).Create(report).Error
	if err != nil {
		return err
	}
	var stored model.Report
	if err := db.Where("user_id = ? AND assignment_id = ?", report.UserID, report.AssignmentID).First(&stored).Error; err != nil {
		return err
	}
	*report = stored
	return nil
}

func (r *reportRepository) FindByID(ctx context.Context, id uint) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, filter ReportFilter, limit, offset int) ([]model.Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Report{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.AssessmentID != 0 {
		q = q.Where("assessment_id = ?", filter.AssessmentID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var reports []model.Report
	err := q.Order("updated_at DESC, id DESC").Limit(limit).Offset(offset).Find(&reports).Error
	return reports, total, err
}
