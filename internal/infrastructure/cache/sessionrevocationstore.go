// Package cache holds redis-backed stores for state that must outlive a
// single request but not the data it refers to.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldesk/internal/shared/logger"
)

const sessionRevokedPrefix = "session:revoked:"

// SessionRevocationStore is the server-side record of signed-out sessions.
// Tokens are stateless, so sign-out works as a denylist: the session id is
// marked revoked for as long as its refresh token could still be alive, and
// the resolver refuses tokens whose session id is on the list.
type SessionRevocationStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewSessionRevocationStore keeps revocation entries for refreshExpDays,
// the lifetime of the longest-lived token that can carry a session id.
func NewSessionRevocationStore(client *redis.Client, refreshExpDays int, log logger.Interface) *SessionRevocationStore {
	return &SessionRevocationStore{
		client: client,
		ttl:    time.Duration(refreshExpDays) * 24 * time.Hour,
		logger: log,
	}
}

// Revoke marks the session id as signed out. The write is synchronous: when
// it returns without error the session's tokens are already unusable.
func (s *SessionRevocationStore) Revoke(ctx context.Context, sessionID string) error {
	key := sessionRevokedPrefix + sessionID
	if err := s.client.Set(ctx, key, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether the session id has been signed out.
func (s *SessionRevocationStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	key := sessionRevokedPrefix + sessionID
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return n > 0, nil
}
