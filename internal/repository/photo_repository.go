package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "petgram/internal/errors"
	"petgram/internal/model"
)

// PhotoRepository defines photo persistence operations.
type PhotoRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Photo, error)
	ListByCategory(ctx context.Context, categoryID *uint) ([]model.Photo, error)
	ListByIDs(ctx context.Context, ids []uint) ([]model.Photo, error)
	IncrementLikes(ctx context.Context, id uint) error
	DecrementLikes(ctx context.Context, id uint) error
	Upsert(ctx context.Context, photos []model.Photo) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// FindByID finds a photo by ID.
func (r *photoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// ListByCategory lists photos of one category, or all photos when
// categoryID is nil.
func (r *photoRepository) ListByCategory(ctx context.Context, categoryID *uint) ([]model.Photo, error) {
	photos := []model.Photo{}
	q := r.db.WithContext(ctx).Order("id")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// ListByIDs returns the photos with the given ids, ordered by id. Unknown
// ids are skipped.
func (r *photoRepository) ListByIDs(ctx context.Context, ids []uint) ([]model.Photo, error) {
	photos := []model.Photo{}
	if len(ids) == 0 {
		return photos, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

// IncrementLikes adds one like in a single UPDATE.
func (r *photoRepository) IncrementLikes(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&model.Photo{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrPhotoNotFound
	}
	return nil
}

// DecrementLikes removes one like. The counter never drops below zero.
func (r *photoRepository) DecrementLikes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Photo{}).
		Where("id = ? AND likes > 0", id).
		UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
}

// Upsert creates the photos or refreshes their descriptive fields and
// metadata. Like counters of existing photos are left alone.
func (r *photoRepository) Upsert(ctx context.Context, photos []model.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "category_id", "src", "duration", "difficulty", "rating", "user_id", "updated_at",
		}),
	}).Create(&photos).Error
}
