package service

import (
	"context"
	"fmt"

	"petgram/internal/identity"
	"petgram/internal/model"
	"petgram/internal/repository"
)

// CatalogService serves categories and photos, personalized with the
// caller's favorites.
type CatalogService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Photos(ctx context.Context, categoryID *uint, id identity.Identity) ([]model.Photo, error)
	Photo(ctx context.Context, photoID uint, id identity.Identity) (*model.Photo, error)
	Favs(ctx context.Context, id identity.Authenticated) ([]model.Photo, error)
	Seed(ctx context.Context, categories []model.Category, photos []model.Photo) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	photoRepo    repository.PhotoRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(categoryRepo repository.CategoryRepository, photoRepo repository.PhotoRepository) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		photoRepo:    photoRepo,
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Photos lists the photos of a category, or every photo when categoryID is nil.
func (s *catalogService) Photos(ctx context.Context, categoryID *uint, id identity.Identity) ([]model.Photo, error) {
	photos, err := s.photoRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	model.MarkLiked(photos, identity.FavoritesOf(id))
	return photos, nil
}

func (s *catalogService) Photo(ctx context.Context, photoID uint, id identity.Identity) (*model.Photo, error) {
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	photo.Liked = identity.FavoritesOf(id).Contains(photo.ID)
	return photo, nil
}

// Favs returns the caller's favorite photos, all marked liked.
func (s *catalogService) Favs(ctx context.Context, id identity.Authenticated) ([]model.Photo, error) {
	favs := identity.FavoritesOf(id)
	photos, err := s.photoRepo.ListByIDs(ctx, favs.IDs())
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	model.MarkLiked(photos, favs)
	return photos, nil
}

// Seed upserts categories and photos.
func (s *catalogService) Seed(ctx context.Context, categories []model.Category, photos []model.Photo) error {
	if err := s.categoryRepo.Upsert(ctx, categories); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.photoRepo.Upsert(ctx, photos); err != nil {
		return fmt.Errorf("seed photos: %w", err)
	}
	return nil
}
