package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "petgram/internal/errors"
	"petgram/internal/model"
)

// UserRepository defines user and favorite persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	HasFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error)
	AddFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error)
	FavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uint, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user. The unique email index makes a concurrent
// duplicate signup fail with ErrUserAlreadyExists.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserAlreadyExists
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateUserErr(err)
	}
	return &user, nil
}

// FindByIDForUpdate finds a user by ID with row-level lock for update.
func (r *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateUserErr(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateUserErr(err)
	}
	return &user, nil
}

func (r *userRepository) HasFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserFavorite{}).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddFavorite reports whether a new favorite row was inserted. Adding an
// existing favorite is a no-op.
func (r *userRepository) AddFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	fav := model.UserFavorite{UserID: userID, PhotoID: photoID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&fav)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RemoveFavorite reports whether a favorite row was deleted.
func (r *userRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Delete(&model.UserFavorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) FavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uint, error) {
	ids := []uint{}
	if err := r.db.WithContext(ctx).Model(&model.UserFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at, photo_id").
		Pluck("photo_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func translateUserErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrUserNotFound
	}
	return err
}
