package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petgram/internal/auth"
	apperrors "petgram/internal/errors"
	"petgram/internal/model"
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

func TestResolver_Resolve(t *testing.T) {
	userID := uuid.New()
	dbErr := errors.New("connection refused")

	tests := []struct {
		name          string
		claims        *auth.Claims
		setupMock     func(*MockUserRepository)
		expected      Identity
		expectedError error
	}{
		{
			name:      "no claims",
			claims:    nil,
			setupMock: func(m *MockUserRepository) {},
			expected:  Anonymous{},
		},
		{
			name:      "empty subject",
			claims:    &auth.Claims{},
			setupMock: func(m *MockUserRepository) {},
			expected:  Anonymous{},
		},
		{
			name:   "known user",
			claims: &auth.Claims{UserID: userID.String(), Email: "a@x.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Email: "a@x.com"}, nil)
				m.On("FavoriteIDs", mock.Anything, userID).Return([]uint{4, 9}, nil)
			},
			expected: Authenticated{UserID: userID, Email: "a@x.com", Favorites: model.NewFavoriteSet([]uint{4, 9})},
		},
		{
			name:   "unknown user",
			claims: &auth.Claims{UserID: userID.String(), Email: "gone@x.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "gone@x.com").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:   "id mismatch",
			claims: &auth.Claims{UserID: uuid.New().String(), Email: "a@x.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Email: "a@x.com"}, nil)
			},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:          "malformed id",
			claims:        &auth.Claims{UserID: "42", Email: "a@x.com"},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:   "datastore failure",
			claims: &auth.Claims{UserID: userID.String(), Email: "a@x.com"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, dbErr)
			},
			expectedError: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			id, err := NewResolver(repo).Resolve(context.Background(), tt.claims)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestResolver_Require(t *testing.T) {
	repo := new(MockUserRepository)
	resolver := NewResolver(repo)

	_, err := resolver.Require(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	userID := uuid.New()
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Email: "a@x.com"}, nil)
	repo.On("FavoriteIDs", mock.Anything, userID).Return([]uint{}, nil)

	authed, err := resolver.Require(context.Background(), &auth.Claims{UserID: userID.String(), Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, userID, authed.UserID)
	assert.Empty(t, authed.Favorites)
}

func TestResolver_OptionalDegradesToAnonymous(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("timeout"))
	resolver := NewResolver(repo)

	id := resolver.Optional(context.Background(), &auth.Claims{UserID: uuid.New().String(), Email: "a@x.com"})

	assert.Equal(t, Anonymous{}, id)
	assert.Empty(t, FavoritesOf(id))
}

func TestFavoritesOf(t *testing.T) {
	assert.Empty(t, FavoritesOf(Anonymous{}))
	assert.NotNil(t, FavoritesOf(Authenticated{}))

	favs := model.NewFavoriteSet([]uint{1})
	assert.Equal(t, favs, FavoritesOf(Authenticated{Favorites: favs}))
}
