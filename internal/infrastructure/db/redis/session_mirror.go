package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// Key format: authUser:<session_key> holds the full JSON snapshot;
// userType:<session_key> holds the bare user-type string kept for
// compatibility with older stored data. The pair is always written and
// deleted together.
const (
	snapshotPrefix = "authUser:"
	userTypePrefix = "userType:"
)

// SessionMirror is the Redis-backed durable mirror for sessions.
type SessionMirror struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionMirror creates a SessionMirror. ttl bounds how long an untouched
// session survives; zero means no expiry.
func NewSessionMirror(client *redis.Client, ttl time.Duration) *SessionMirror {
	return &SessionMirror{client: client, ttl: ttl}
}

// ReadSnapshot returns the stored snapshot for key, or ErrNoSession when the
// entry is absent.
func (m *SessionMirror) ReadSnapshot(ctx context.Context, key string) ([]byte, error) {
	raw, err := m.client.Get(ctx, snapshotPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("read session snapshot: %w", err)
	}
	return raw, nil
}

// WriteSnapshot stores both entries in a single transactional pipeline so the
// snapshot and the legacy entry cannot diverge.
func (m *SessionMirror) WriteSnapshot(ctx context.Context, key string, snapshot []byte, userType domain.UserType) error {
	pipe := m.client.TxPipeline()
	pipe.Set(ctx, snapshotPrefix+key, snapshot, m.ttl)
	pipe.Set(ctx, userTypePrefix+key, string(userType), m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write session snapshot: %w", err)
	}
	return nil
}

// Delete removes both entries; absent keys are not an error.
func (m *SessionMirror) Delete(ctx context.Context, key string) error {
	pipe := m.client.TxPipeline()
	pipe.Del(ctx, snapshotPrefix+key)
	pipe.Del(ctx, userTypePrefix+key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session snapshot: %w", err)
	}
	return nil
}
