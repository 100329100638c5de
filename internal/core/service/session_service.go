package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// SessionService is the single source of truth for the active session. All
// in-memory views of "who is signed in" derive from the mirror through this
// service, so state and mirror cannot diverge outside its atomic updates.
type SessionService struct {
	mirror ports.SessionMirror
	log    zerolog.Logger
}

func NewSessionService(mirror ports.SessionMirror, log zerolog.Logger) *SessionService {
	return &SessionService{mirror: mirror, log: log}
}

// Restore loads the mirrored snapshot for key. A snapshot that cannot be
// parsed as a whole session is deleted — both entries — and reported as
// ErrNoSession: restore is all-or-nothing, and corruption fails open to the
// credential gate with no visible error.
func (s *SessionService) Restore(ctx context.Context, key string) (*domain.Session, error) {
	raw, err := s.mirror.ReadSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt session snapshot")
		if delErr := s.mirror.Delete(ctx, key); delErr != nil {
			s.log.Error().Err(delErr).Msg("failed to delete corrupt session snapshot")
		}
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

// Put replaces the stored session wholesale: the full snapshot and the legacy
// user-type entry are written in the same step.
func (s *SessionService) Put(ctx context.Context, key string, session *domain.Session) error {
	snapshot, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if err := s.mirror.WriteSnapshot(ctx, key, snapshot, session.UserType); err != nil {
		return fmt.Errorf("mirror session: %w", err)
	}
	return nil
}

// Clear removes both mirror entries. Clearing an absent session is a no-op.
func (s *SessionService) Clear(ctx context.Context, key string) error {
	if err := s.mirror.Delete(ctx, key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
