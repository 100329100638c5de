package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// AuthService implements sign-in: the credential gate, the single point
// lookup, session persistence, and token issuance.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Authenticate validates the pair against the gate rules for userType, then
// issues exactly one equality lookup against the record store. Malformed
// input never reaches the store. A zero-row result surfaces as the one
// generic ErrInvalidCredentials — the response never says which field was
// wrong. Repeating identical credentials against an unchanged store repeats
// the identical outcome; the lookup is read-only.
func (s *AuthService) Authenticate(ctx context.Context, field1, field2 string, userType domain.UserType) (*ports.AuthResult, error) {
	f1 := domain.SanitizeField1(userType, field1)
	f2 := domain.SanitizeField2(userType, field2)
	if !domain.ValidCredentials(userType, f1, f2) {
		return nil, domain.ErrValidation
	}

	role, err := userType.RoleIndex()
	if err != nil {
		return nil, domain.ErrValidation
	}

	rec, err := s.repo.FindByCredentials(ctx, f1, f2, role)
	if err != nil {
		s.log.Debug().Err(err).Int("role", role).Msg("sign-in lookup failed")
		return nil, err
	}

	// The tag comes from the caller, not from the stored role integer: the
	// caller already knows the semantic type it asked for.
	session := &domain.Session{
		ID:       rec.ID,
		Field1:   rec.Field1,
		Field2:   rec.Field2,
		Role:     rec.Role,
		UserType: userType,
		Data:     rec.Data,
	}

	key := uuid.NewString()
	if err := s.sessions.Put(ctx, key, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	// Audit trail is best effort; a failed insert must not undo the sign-in.
	audit := &ports.SignInEvent{
		ID:     uuid.NewString(),
		UserID: rec.ID,
		Role:   rec.Role,
		At:     time.Now().UTC(),
	}
	if err := s.repo.RecordSignIn(ctx, audit); err != nil {
		s.log.Warn().Err(err).Int64("user_id", rec.ID).Msg("failed to record sign-in event")
	}

	token, err := s.generateToken(key, session)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().
		Int64("user_id", rec.ID).
		Str("user_type", string(userType)).
		Msg("sign-in succeeded")

	return &ports.AuthResult{Token: token, SessionKey: key, Session: session}, nil
}

func (s *AuthService) generateToken(sessionKey string, session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sessionKey,
		"role":     session.Role,
		"userType": string(session.UserType),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
