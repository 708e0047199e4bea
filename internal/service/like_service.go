package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apperrors "petgram/internal/errors"
	"petgram/internal/identity"
	"petgram/internal/model"
	"petgram/internal/repository"
)

// LikeService applies like and favorite transitions to photos.
type LikeService interface {
	LikeAnonymousPhoto(ctx context.Context, photoID uint) (*model.Photo, error)
	LikePhoto(ctx context.Context, photoID uint, id identity.Identity) (*model.Photo, error)
}

type likeService struct {
	userRepo   repository.UserRepository
	photoRepo  repository.PhotoRepository
	transactor repository.Transactor
}

// NewLikeService creates a new like service.
func NewLikeService(userRepo repository.UserRepository, photoRepo repository.PhotoRepository, transactor repository.Transactor) LikeService {
	return &likeService{
		userRepo:   userRepo,
		photoRepo:  photoRepo,
		transactor: transactor,
	}
}

// LikeAnonymousPhoto adds one like to the photo. Anonymous likes are not
// tracked per caller and can never be taken back.
func (s *likeService) LikeAnonymousPhoto(ctx context.Context, photoID uint) (*model.Photo, error) {
	if _, err := s.photoRepo.FindByID(ctx, photoID); err != nil {
		return nil, err
	}
	if err := s.photoRepo.IncrementLikes(ctx, photoID); err != nil {
		return nil, fmt.Errorf("add like: %w", err)
	}
	return s.photoRepo.FindByID(ctx, photoID)
}

// LikePhoto toggles the photo in the caller's favorites and moves the like
// counter with it.
func (s *likeService) LikePhoto(ctx context.Context, photoID uint, id identity.Identity) (*model.Photo, error) {
	var userID uuid.UUID
	switch v := id.(type) {
	case identity.Authenticated:
		userID = v.UserID
	case identity.Anonymous, nil:
		return nil, apperrors.ErrUnauthorized
	default:
		panic(fmt.Sprintf("like: unknown identity type %T", id))
	}

	if _, err := s.photoRepo.FindByID(ctx, photoID); err != nil {
		return nil, err
	}

	// The user row lock serializes toggles by the same user, so the
	// HasFavorite read stays valid until the writes below commit.
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, photos repository.PhotoRepository) error {
		if _, err := users.FindByIDForUpdate(ctx, userID); err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return apperrors.ErrUnauthorized
			}
			return err
		}

		hasFav, err := users.HasFavorite(ctx, userID, photoID)
		if err != nil {
			return err
		}

		if hasFav {
			removed, err := users.RemoveFavorite(ctx, userID, photoID)
			if err != nil {
				return err
			}
			if removed {
				return photos.DecrementLikes(ctx, photoID)
			}
			return nil
		}

		added, err := users.AddFavorite(ctx, userID, photoID)
		if err != nil {
			return err
		}
		if added {
			return photos.IncrementLikes(ctx, photoID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	ids, err := s.userRepo.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	photo, err := s.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	photo.Liked = model.NewFavoriteSet(ids).Contains(photo.ID)
	return photo, nil
}
