package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// stubMirror keeps both mirror entries per key, like the real two-key layout.
type stubMirror struct {
	snapshots map[string][]byte
	userTypes map[string]string
}

func newStubMirror() *stubMirror {
	return &stubMirror{
		snapshots: make(map[string][]byte),
		userTypes: make(map[string]string),
	}
}

func (m *stubMirror) ReadSnapshot(_ context.Context, key string) ([]byte, error) {
	raw, ok := m.snapshots[key]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return raw, nil
}

func (m *stubMirror) WriteSnapshot(_ context.Context, key string, snapshot []byte, userType domain.UserType) error {
	m.snapshots[key] = snapshot
	m.userTypes[key] = string(userType)
	return nil
}

func (m *stubMirror) Delete(_ context.Context, key string) error {
	delete(m.snapshots, key)
	delete(m.userTypes, key)
	return nil
}

func TestSessionService_PutRestore(t *testing.T) {
	mirror := newStubMirror()
	svc := NewSessionService(mirror, zerolog.Nop())

	session := &domain.Session{
		ID:       9,
		Field1:   "admin@stmarys.org",
		Field2:   "secret99",
		Role:     2,
		UserType: domain.UserTypeHospital,
	}
	if err := svc.Put(context.Background(), "k1", session); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if mirror.userTypes["k1"] != "Hospital" {
		t.Fatalf("legacy entry = %q, want Hospital", mirror.userTypes["k1"])
	}

	restored, err := svc.Restore(context.Background(), "k1")
	if err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if !reflect.DeepEqual(session, restored) {
		t.Fatalf("restore mismatch:\n got  %+v\n want %+v", restored, session)
	}
}

func TestSessionService_RestoreMissing(t *testing.T) {
	svc := NewSessionService(newStubMirror(), zerolog.Nop())

	if _, err := svc.Restore(context.Background(), "absent"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestSessionService_CorruptSnapshotDeletedWhole(t *testing.T) {
	mirror := newStubMirror()
	mirror.snapshots["k1"] = []byte(`{"id":1,"userType":"Patient","data":{"prescriptions":"gone"}}`)
	mirror.userTypes["k1"] = "Patient"
	svc := NewSessionService(mirror, zerolog.Nop())

	if _, err := svc.Restore(context.Background(), "k1"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for corrupt snapshot, got %v", err)
	}
	if _, ok := mirror.snapshots["k1"]; ok {
		t.Fatalf("corrupt snapshot not deleted")
	}
	if _, ok := mirror.userTypes["k1"]; ok {
		t.Fatalf("legacy entry survived the corrupt-snapshot delete")
	}
}

func TestSessionService_Clear(t *testing.T) {
	mirror := newStubMirror()
	svc := NewSessionService(mirror, zerolog.Nop())

	session := &domain.Session{ID: 1, UserType: domain.UserTypePatient, Field1: "5551234567", Field2: "1234"}
	if err := svc.Put(context.Background(), "k1", session); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := svc.Clear(context.Background(), "k1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if len(mirror.snapshots) != 0 || len(mirror.userTypes) != 0 {
		t.Fatalf("Clear left mirror entries behind")
	}

	// Clearing again is a no-op.
	if err := svc.Clear(context.Background(), "k1"); err != nil {
		t.Fatalf("Clear of absent key returned error: %v", err)
	}
}
