package repository

import (
	"context"

	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
)

type ProctoringSettingRepository interface {
	FindByAssessment(ctx context.Context, assessmentID uint) (*model.ProctoringSetting, error)
}

type proctoringSettingRepository struct {
	db *gorm.DB
}

func NewProctoringSettingRepository(db *gorm.DB) ProctoringSettingRepository {
	return &proctoringSettingRepository{db: db}
}

func (r *proctoringSettingRepository) FindByAssessment(ctx context.Context, assessmentID uint) (*model.ProctoringSetting, error) {
	var s model.ProctoringSetting
	if err := r.db.WithContext(ctx).Where("assessment_id = ?", assessmentID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

type ProctoringLogRepository interface {
	CreateBatch(ctx context.Context, logs []model.ProctoringLog) error
	// CountByEventType groups every log of the attempt by event type.
	CountByEventType(ctx context.Context, attemptID uint) (map[string]int, error)
}

type proctoringLogRepository struct {
	db *gorm.DB
}

func NewProctoringLogRepository(db *gorm.DB) ProctoringLogRepository {
	return &proctoringLogRepository{db: db}
}

func (r *proctoringLogRepository) CreateBatch(ctx context.Context, logs []model.ProctoringLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}

func (r *proctoringLogRepository) CountByEventType(ctx context.Context, attemptID uint) (map[string]int, error) {
	var rows []struct {
		EventType string
		Count     int
	}
	err := r.db.WithContext(ctx).
		Model(&model.ProctoringLog{}).
		Select("event_type, COUNT(*) AS count").
		Where("attempt_id = ?", attemptID).
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.EventType] = row.Count
	}
	return counts, nil
}
