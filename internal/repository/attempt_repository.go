package repository

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
)

type AttemptFilter struct {
	UserID       *uuid.UUID
	AssignmentID uint
	Status       model.AttemptStatus
	From         *time.Time
	To           *time.Time
}

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	Update(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uint) (*model.Attempt, error)
	// FindByIDForUpdate takes an exclusive row lock for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Attempt, error)
	// FindByIDForShare blocks concurrent FindByIDForUpdate callers until commit.
	FindByIDForShare(ctx context.Context, id uint) (*model.Attempt, error)
	FindByAssignmentAndUser(ctx context.Context, assignmentID uint, userID uuid.UUID) ([]model.Attempt, error)
	// LockSlot serializes attempt creation for one learner on one assignment
	// until the surrounding transaction ends.
	LockSlot(ctx context.Context, assignmentID uint, userID uuid.UUID) error
	List(ctx context.Context, filter AttemptFilter, limit, offset int) ([]model.Attempt, int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) Update(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id uint) (*model.Attempt, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *attemptRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Attempt, error) {
	return r.first(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *attemptRepository) FindByIDForShare(ctx context.Context, id uint) (*model.Attempt, error) {
	return r.first(forShare(r.db.WithContext(ctx)), id)
}

func (r *attemptRepository) first(db *gorm.DB, id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByAssignmentAndUser(ctx context.Context, assignmentID uint, userID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := forUpdate(r.db.WithContext(ctx)).
		Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Order("attempt_number ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) LockSlot(ctx context.Context, assignmentID uint, userID uuid.UUID) error {
	if !isPostgres(r.db) {
		return nil
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", slotKey(assignmentID, userID)).Error
}

// slotKey folds (assignment, user) into the bigint keyspace of advisory locks.
func slotKey(assignmentID uint, userID uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("attempt-slot:" + strconv.FormatUint(uint64(assignmentID), 10) + ":"))
	_, _ = h.Write(userID[:])
	return int64(h.Sum64())
}

func (r *attemptRepository) List(ctx context.Context, filter AttemptFilter, limit, offset int) ([]model.Attempt, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Attempt{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.AssignmentID != 0 {
		q = q.Where("assignment_id = ?", filter.AssignmentID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("started_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("started_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var attempts []model.Attempt
	err := q.Order("started_at DESC, id DESC").Limit(limit).Offset(offset).Find(&attempts).Error
	return attempts, total, err
}
