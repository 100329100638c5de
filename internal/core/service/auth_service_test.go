package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

type stubUserRepo struct {
	records     []*ports.UserRecord
	lookups     int
	auditErr    error
	auditEvents []*ports.SignInEvent
}

func (r *stubUserRepo) FindByCredentials(_ context.Context, field1, field2 string, role int) (*ports.UserRecord, error) {
	r.lookups++
	for _, rec := range r.records {
		if rec.Field1 == field1 && rec.Field2 == field2 && rec.Role == role {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *stubUserRepo) CreateUser(_ context.Context, field1, field2 string, role int, data domain.DashboardData) (*ports.UserRecord, error) {
	for _, rec := range r.records {
		if rec.Field1 == field1 && rec.Role == role {
			return nil, domain.ErrDoctorExists
		}
	}
	rec := &ports.UserRecord{
		ID:     int64(len(r.records) + 1),
		Field1: field1,
		Field2: field2,
		Role:   role,
		Data:   data,
	}
	r.records = append(r.records, rec)
	return rec, nil
}

func (r *stubUserRepo) RecordSignIn(_ context.Context, event *ports.SignInEvent) error {
	if r.auditErr != nil {
		return r.auditErr
	}
	r.auditEvents = append(r.auditEvents, event)
	return nil
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Restore(_ context.Context, key string) (*domain.Session, error) {
	session, ok := s.sessions[key]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return session, nil
}

func (s *stubSessionStore) Put(_ context.Context, key string, session *domain.Session) error {
	s.sessions[key] = session
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, key string) error {
	delete(s.sessions, key)
	return nil
}

func newTestAuthService(repo *stubUserRepo, store *stubSessionStore) *AuthService {
	return NewAuthService(repo, store, "secret", time.Hour, zerolog.Nop())
}

func TestAuthenticate_Success(t *testing.T) {
	repo := &stubUserRepo{records: []*ports.UserRecord{
		{ID: 1, Field1: "5551234567", Field2: "1234", Role: 0},
	}}
	store := newStubSessionStore()
	svc := newTestAuthService(repo, store)

	result, err := svc.Authenticate(context.Background(), "(555) 123-4567", "12-34", domain.UserTypePatient)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if result.Session.ID != 1 {
		t.Fatalf("unexpected session id: %d", result.Session.ID)
	}
	if result.Session.UserType != domain.UserTypePatient {
		t.Fatalf("session tagged %q, want Patient", result.Session.UserType)
	}
	if result.Token == "" || result.SessionKey == "" {
		t.Fatalf("expected token and session key")
	}
	if _, ok := store.sessions[result.SessionKey]; !ok {
		t.Fatalf("session not persisted under its key")
	}
	if len(repo.auditEvents) != 1 || repo.auditEvents[0].UserID != 1 {
		t.Fatalf("expected one audit event for user 1, got %+v", repo.auditEvents)
	}
}

func TestAuthenticate_TokenClaims(t *testing.T) {
	repo := &stubUserRepo{records: []*ports.UserRecord{
		{ID: 3, Field1: "drhouse", Field2: "vicodin", Role: 1},
	}}
	svc := newTestAuthService(repo, newStubSessionStore())

	result, err := svc.Authenticate(context.Background(), "drhouse", "vicodin", domain.UserTypeDoctor)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims["sid"] != result.SessionKey {
		t.Fatalf("sid claim = %v, want %s", claims["sid"], result.SessionKey)
	}
	if claims["userType"] != "Doctor" {
		t.Fatalf("userType claim = %v, want Doctor", claims["userType"])
	}
	if int(claims["role"].(float64)) != 1 {
		t.Fatalf("role claim = %v, want 1", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("missing exp claim")
	}
}

func TestAuthenticate_ValidationBlocksLookup(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestAuthService(repo, newStubSessionStore())

	cases := []struct {
		userType domain.UserType
		field1   string
		field2   string
	}{
		{domain.UserTypePatient, "555123", "1234"},
		{domain.UserTypeDoctor, "dr", "secret"},
		{domain.UserTypeHospital, "not-an-email", "secret"},
		{domain.UserTypeInsurance, "claims@acme.com", "123"},
	}
	for _, tc := range cases {
		if _, err := svc.Authenticate(context.Background(), tc.field1, tc.field2, tc.userType); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Authenticate(%s, %q, %q): expected ErrValidation, got %v",
				tc.userType, tc.field1, tc.field2, err)
		}
	}
	if repo.lookups != 0 {
		t.Fatalf("malformed input reached the store: %d lookups", repo.lookups)
	}
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	repo := &stubUserRepo{records: []*ports.UserRecord{
		{ID: 1, Field1: "5551234567", Field2: "1234", Role: 0},
	}}
	store := newStubSessionStore()
	svc := newTestAuthService(repo, store)

	// Well-formed but wrong code: same generic error as a missing account.
	_, err := svc.Authenticate(context.Background(), "5551234567", "9999", domain.UserTypePatient)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("failed sign-in left a session behind")
	}
}

func TestAuthenticate_RoleScopesLookup(t *testing.T) {
	// Same credential pair stored under role 0 must not sign in a Doctor.
	repo := &stubUserRepo{records: []*ports.UserRecord{
		{ID: 1, Field1: "abcdef", Field2: "secret99", Role: 0},
	}}
	svc := newTestAuthService(repo, newStubSessionStore())

	if _, err := svc.Authenticate(context.Background(), "abcdef", "secret99", domain.UserTypeDoctor); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for role mismatch, got %v", err)
	}
}

func TestAuthenticate_Idempotent(t *testing.T) {
	repo := &stubUserRepo{records: []*ports.UserRecord{
		{ID: 1, Field1: "5551234567", Field2: "1234", Role: 0},
	}}
	svc := newTestAuthService(repo, newStubSessionStore())

	first, err := svc.Authenticate(context.Background(), "5551234567", "1234", domain.UserTypePatient)
	if err != nil {
		t.Fatalf("first Authenticate returned error: %v", err)
	}
	second, err := svc.Authenticate(context.Background(), "5551234567", "1234", domain.UserTypePatient)
	if err != nil {
		t.Fatalf("second Authenticate returned error: %v", err)
	}
	if first.Session.ID != second.Session.ID || first.Session.Role != second.Session.Role {
		t.Fatalf("repeat sign-in resolved a different identity")
	}
}

func TestAuthenticate_AuditFailureIsNonFatal(t *testing.T) {
	repo := &stubUserRepo{
		records:  []*ports.UserRecord{{ID: 1, Field1: "5551234567", Field2: "1234", Role: 0}},
		auditErr: errors.New("audit collection down"),
	}
	svc := newTestAuthService(repo, newStubSessionStore())

	if _, err := svc.Authenticate(context.Background(), "5551234567", "1234", domain.UserTypePatient); err != nil {
		t.Fatalf("audit failure broke sign-in: %v", err)
	}
}
