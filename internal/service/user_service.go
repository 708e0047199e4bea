package service

import (
	"context"

	"petgram/internal/identity"
	"petgram/internal/model"
	"petgram/internal/repository"
)

// Profile is the caller's own account view.
type Profile struct {
	*model.User
	Favorites []uint `json:"favs"`
}

// UserService exposes account operations for logged in users.
type UserService interface {
	Profile(ctx context.Context, id identity.Authenticated) (*Profile, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService with repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Profile(ctx context.Context, id identity.Authenticated) (*Profile, error) {
	user, err := s.repo.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	ids, err := s.repo.FavoriteIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: user, Favorites: ids}, nil
}
