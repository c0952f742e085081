package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MirrorRepository maintains the institute, batch and user replicas. Every
// method is idempotent by primary key.
type MirrorRepository interface {
	UpsertInstitute(ctx context.Context, i *model.Institute) error
	DeleteInstitute(ctx context.Context, id uint) error
	UpsertBatch(ctx context.Context, b *model.Batch) error
	DeleteBatch(ctx context.Context, id uint) error
	UpsertUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type mirrorRepository struct {
	db *gorm.DB
}

func NewMirrorRepository(db *gorm.DB) MirrorRepository {
	return &mirrorRepository{db: db}
}

func (r *mirrorRepository) upsert(ctx context.Context, value any) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(value).Error
}

func (r *mirrorRepository) UpsertInstitute(ctx context.Context, i *model.Institute) error {
	return r.upsert(ctx, i)
}

func (r *mirrorRepository) DeleteInstitute(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Institute{}, id).Error
}

func (r *mirrorRepository) UpsertBatch(ctx context.Context, b *model.Batch) error {
	return r.upsert(ctx, b)
}

func (r *mirrorRepository) DeleteBatch(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Batch{}, id).Error
}

func (r *mirrorRepository) UpsertUser(ctx context.Context, u *model.User) error {
	return r.upsert(ctx, u)
}

func (r *mirrorRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.User{}).Error
}
