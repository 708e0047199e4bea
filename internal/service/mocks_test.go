package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"petgram/internal/model"
	"petgram/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) HasFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	args := m.Called(ctx, userID, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	args := m.Called(ctx, userID, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, photoID uint) (bool, error) {
	args := m.Called(ctx, userID, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FavoriteIDs(ctx context.Context, userID uuid.UUID) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockPhotoRepository is a mock implementation of PhotoRepository.
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) FindByID(ctx context.Context, id uint) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so callers mutating Liked do not leak into later calls.
	photo := *args.Get(0).(*model.Photo)
	return &photo, args.Error(1)
}

func (m *MockPhotoRepository) ListByCategory(ctx context.Context, categoryID *uint) ([]model.Photo, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) ListByIDs(ctx context.Context, ids []uint) ([]model.Photo, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Photo), args.Error(1)
}

func (m *MockPhotoRepository) IncrementLikes(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhotoRepository) DecrementLikes(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhotoRepository) Upsert(ctx context.Context, photos []model.Photo) error {
	args := m.Called(ctx, photos)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Upsert(ctx context.Context, categories []model.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

// MockAttemptStore is a mock implementation of AttemptStoreInterface.
type MockAttemptStore struct {
	mock.Mock
}

func (m *MockAttemptStore) Failures(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptStore) RecordFailure(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptStore) Reset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// mockTransactor runs the unit of work directly against the given mocks.
type mockTransactor struct {
	users  repository.UserRepository
	photos repository.PhotoRepository
}

func (t *mockTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, users repository.UserRepository, photos repository.PhotoRepository) error) error {
	return fn(ctx, t.users, t.photos)
}
