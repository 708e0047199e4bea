// Package identity derives the caller's identity for a request from the
// session token claims, if any.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"petgram/internal/auth"
	apperrors "petgram/internal/errors"
	"petgram/internal/model"
	"petgram/internal/repository"
)

// Identity is either Anonymous or Authenticated.
type Identity interface {
	isIdentity()
}

// Anonymous is a caller without a usable session token.
type Anonymous struct{}

// Authenticated is a caller whose token resolved to an existing user.
type Authenticated struct {
	UserID    uuid.UUID
	Email     string
	Favorites model.FavoriteSet
}

func (Anonymous) isIdentity()     {}
func (Authenticated) isIdentity() {}

// FavoritesOf returns the favorite set of id, empty for anonymous callers.
func FavoritesOf(id Identity) model.FavoriteSet {
	switch v := id.(type) {
	case Authenticated:
		if v.Favorites == nil {
			return model.FavoriteSet{}
		}
		return v.Favorites
	case Anonymous:
		return model.FavoriteSet{}
	default:
		panic(fmt.Sprintf("identity: unknown identity type %T", id))
	}
}

// Resolver turns token claims into an Identity.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver creates a resolver backed by the user directory.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns Anonymous when claims carry no subject. Otherwise the user
// must exist with the same id and email, or ErrUnauthorized is returned.
func (r *Resolver) Resolve(ctx context.Context, claims *auth.Claims) (Identity, error) {
	if claims == nil || claims.UserID == "" {
		return Anonymous{}, nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := r.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if user.ID != userID {
		return nil, apperrors.ErrUnauthorized
	}

	ids, err := r.users.FavoriteIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	return Authenticated{
		UserID:    user.ID,
		Email:     user.Email,
		Favorites: model.NewFavoriteSet(ids),
	}, nil
}

// Require resolves claims and rejects anonymous callers with ErrUnauthorized.
func (r *Resolver) Require(ctx context.Context, claims *auth.Claims) (Authenticated, error) {
	id, err := r.Resolve(ctx, claims)
	if err != nil {
		return Authenticated{}, err
	}
	switch v := id.(type) {
	case Authenticated:
		return v, nil
	case Anonymous:
		return Authenticated{}, apperrors.ErrUnauthorized
	default:
		panic(fmt.Sprintf("identity: unknown identity type %T", id))
	}
}

// Optional resolves claims for read paths that only personalize results.
// Any failure degrades to Anonymous.
func (r *Resolver) Optional(ctx context.Context, claims *auth.Claims) Identity {
	id, err := r.Resolve(ctx, claims)
	if err != nil {
		log.Printf("identity: falling back to anonymous: %v", err)
		return Anonymous{}
	}
	return id
}
