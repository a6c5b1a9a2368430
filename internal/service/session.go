package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobvault/vacancy-service/internal/apperr"
)

const sessionKeyPrefix = "token:"

// SessionStore records the single currently-valid token per user. Put always
// overwrites, so a second login silently invalidates the previous token even
// though its signature would still verify. This single-session-per-user
// policy is intentional and relied on by the auth gate.
type SessionStore interface {
	// Put stores the token under the user's key with the given TTL,
	// replacing any existing entry.
	Put(ctx context.Context, username, token string, ttl time.Duration) error
	// Get returns the stored token, or apperr.ErrNotFound if no entry
	// exists (or it has expired).
	Get(ctx context.Context, username string) (string, error)
	// Delete removes the entry and reports whether one existed.
	Delete(ctx context.Context, username string) (bool, error)
	// Available reports whether the store is backed by a live cache.
	// When false, all operations are no-ops and callers must fall back
	// to signature+expiry verification only.
	Available() bool
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a SessionStore backed by the given redis
// client.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Put(ctx context.Context, username, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+username, token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session for %s: %w", username, err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, username string) (string, error) {
	token, err := s.client.Get(ctx, sessionKeyPrefix+username).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperr.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session for %s: %w", username, err)
	}
	return token, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, username string) (bool, error) {
	deleted, err := s.client.Del(ctx, sessionKeyPrefix+username).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete session for %s: %w", username, err)
	}
	return deleted > 0, nil
}

func (s *redisSessionStore) Available() bool {
	return true
}

// unavailableSessionStore is the degraded-mode variant used when the cache
// cannot be reached at startup. The service keeps running with stateless
// token verification; logout and relogin lose their revocation effect.
type unavailableSessionStore struct{}

// NewUnavailableSessionStore returns the no-op SessionStore.
func NewUnavailableSessionStore() SessionStore {
	return unavailableSessionStore{}
}

func (unavailableSessionStore) Put(context.Context, string, string, time.Duration) error {
	return nil
}

func (unavailableSessionStore) Get(context.Context, string) (string, error) {
	return "", apperr.ErrNotFound
}

func (unavailableSessionStore) Delete(context.Context, string) (bool, error) {
	return false, nil
}

func (unavailableSessionStore) Available() bool {
	return false
}
