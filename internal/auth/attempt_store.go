package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"petgram/internal/cache"
)

const loginAttemptKeyPrefix = "login_attempts:"

// AttemptStoreInterface defines the interface for failed login bookkeeping.
type AttemptStoreInterface interface {
	Failures(ctx context.Context, email string) (int64, error)
	RecordFailure(ctx context.Context, email string) (int64, error)
	Reset(ctx context.Context, email string) error
}

// AttemptStore counts failed logins per email in Redis. Counters expire
// after the window set at construction.
type AttemptStore struct {
	cache  *cache.Client
	window time.Duration
}

// Ensure AttemptStore implements AttemptStoreInterface
var _ AttemptStoreInterface = (*AttemptStore)(nil)

// NewAttemptStore creates a new attempt store.
func NewAttemptStore(cache *cache.Client, window time.Duration) *AttemptStore {
	return &AttemptStore{cache: cache, window: window}
}

func (s *AttemptStore) key(email string) string {
	return loginAttemptKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Failures returns the number of failed logins inside the current window.
func (s *AttemptStore) Failures(ctx context.Context, email string) (int64, error) {
	data, err := s.cache.Get(ctx, s.key(email))
	if err != nil || data == nil {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// RecordFailure increments the counter and returns its new value. The window
// starts with the first failure.
func (s *AttemptStore) RecordFailure(ctx context.Context, email string) (int64, error) {
	return s.cache.Incr(ctx, s.key(email), s.window)
}

// Reset clears the counter after a successful login.
func (s *AttemptStore) Reset(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, s.key(email))
}
