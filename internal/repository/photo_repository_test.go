package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "petgram/internal/errors"
	"petgram/internal/model"
	"petgram/internal/testutil"
)

func newSeededPhotoRepo(t *testing.T) PhotoRepository {
	t.Helper()
	gormDB := testutil.NewDB(t)
	testutil.SeedCatalog(t, gormDB)
	return NewPhotoRepository(gormDB)
}

func TestPhotoRepository_FindByID(t *testing.T) {
	repo := newSeededPhotoRepo(t)
	ctx := context.Background()

	photo, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Siamese", photo.Name)
	assert.False(t, photo.Liked)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrPhotoNotFound)
}

func TestPhotoRepository_ListByCategory(t *testing.T) {
	repo := newSeededPhotoRepo(t)
	ctx := context.Background()

	cats := uint(1)
	photos, err := repo.ListByCategory(ctx, &cats)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, uint(1), photos[0].ID)
	assert.Equal(t, uint(2), photos[1].ID)

	all, err := repo.ListByCategory(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none := uint(42)
	photos, err = repo.ListByCategory(ctx, &none)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestPhotoRepository_ListByIDs(t *testing.T) {
	repo := newSeededPhotoRepo(t)
	ctx := context.Background()

	photos, err := repo.ListByIDs(ctx, []uint{3, 1, 77})
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, uint(1), photos[0].ID)
	assert.Equal(t, uint(3), photos[1].ID)

	photos, err = repo.ListByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestPhotoRepository_LikeCounter(t *testing.T) {
	repo := newSeededPhotoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.IncrementLikes(ctx, 1))
	require.NoError(t, repo.IncrementLikes(ctx, 1))
	photo, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(2), photo.Likes)

	require.NoError(t, repo.DecrementLikes(ctx, 1))
	require.NoError(t, repo.DecrementLikes(ctx, 1))
	require.NoError(t, repo.DecrementLikes(ctx, 1))
	photo, err = repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(0), photo.Likes, "counter never goes below zero")

	assert.ErrorIs(t, repo.IncrementLikes(ctx, 99), apperrors.ErrPhotoNotFound)
}

func TestPhotoRepository_UpsertKeepsLikes(t *testing.T) {
	repo := newSeededPhotoRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.IncrementLikes(ctx, 1))
	require.NoError(t, repo.Upsert(ctx, []model.Photo{
		{ID: 1, Name: "Tabby (renamed)", CategoryID: 1, Src: "https://img.example/1b.jpg"},
		{ID: 4, Name: "Parrot", CategoryID: 2, Src: "https://img.example/4.jpg", Likes: 5, Rating: 4, Difficulty: "easy"},
	}))

	photo, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tabby (renamed)", photo.Name)
	assert.Equal(t, uint(1), photo.Likes)

	photo, err = repo.FindByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, uint(5), photo.Likes)
	assert.Equal(t, 4, photo.Rating)
	assert.Equal(t, "easy", photo.Difficulty)
	assert.Nil(t, photo.UserID)
}
