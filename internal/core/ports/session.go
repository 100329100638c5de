package ports

import (
	"context"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// SessionMirror is the durable key-value mirror backing the session store.
// Every write and delete covers both entries — the full snapshot and the
// legacy bare user-type string — in one atomic step.
type SessionMirror interface {
	// ReadSnapshot returns the serialized session snapshot, or
	// domain.ErrNoSession when no entry exists for key.
	ReadSnapshot(ctx context.Context, key string) ([]byte, error)
	// WriteSnapshot stores the snapshot and the legacy user-type entry.
	WriteSnapshot(ctx context.Context, key string, snapshot []byte, userType domain.UserType) error
	// Delete removes both entries. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionStore is the single source of truth for "who is signed in".
type SessionStore interface {
	// Restore loads and parses the mirrored session. A corrupt snapshot is
	// deleted in full and reported as domain.ErrNoSession — never a partial
	// restore, never a visible parse error.
	Restore(ctx context.Context, key string) (*domain.Session, error)
	// Put replaces the stored session wholesale.
	Put(ctx context.Context, key string, session *domain.Session) error
	// Clear removes the session; equivalent to signing out.
	Clear(ctx context.Context, key string) error
}
