package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petgram/internal/auth"
	apperrors "petgram/internal/errors"
	"petgram/internal/model"
	"petgram/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

// AuthOptions tunes AuthService behaviour.
type AuthOptions struct {
	// Delay is waited before signup and login do any work.
	Delay time.Duration
	// MaxAttempts is the number of failed logins allowed per email inside
	// the attempt store's window. Zero disables the limit.
	MaxAttempts int
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	attempts   auth.AttemptStoreInterface
	opts       AuthOptions
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, attempts auth.AttemptStoreInterface, opts AuthOptions) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		attempts:   attempts,
		opts:       opts,
	}
}

// Signup creates a user with a hashed password and returns a long lived token.
func (s *authService) Signup(ctx context.Context, email, password string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	email = normalizeEmail(email)

	// Check if user already exists
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return "", apperrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return "", err
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.IssueToken(user.ID, user.Email, auth.SignupTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login verifies credentials and returns a short lived token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	email = normalizeEmail(email)

	if s.opts.MaxAttempts > 0 {
		failures, _ := s.attempts.Failures(ctx, email)
		if failures >= int64(s.opts.MaxAttempts) {
			return "", apperrors.ErrTooManyAttempts
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		_, _ = s.attempts.RecordFailure(ctx, email)
		return "", apperrors.ErrInvalidCredentials
	}
	_ = s.attempts.Reset(ctx, email)

	token, err := s.jwtService.IssueToken(user.ID, user.Email, auth.LoginTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// wait pauses for the configured delay, returning early on cancellation.
func (s *authService) wait(ctx context.Context) error {
	if s.opts.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.opts.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
