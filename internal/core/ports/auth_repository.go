package ports

import (
	"context"
	"time"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// UserRecord is one row of the users collection as returned by the point
// lookup. Data is already decoded into the role's payload type; nil when the
// stored record carries no payload.
type UserRecord struct {
	ID        int64
	Field1    string
	Field2    string
	Role      int
	Data      domain.DashboardData
	CreatedAt time.Time
}

// SignInEvent is one entry of the sign-in audit trail.
type SignInEvent struct {
	ID     string
	UserID int64
	Role   int
	At     time.Time
}

// AuthRepository is the persistence interface for credential lookups.
type AuthRepository interface {
	// FindByCredentials selects the unique row where field1, field2 and role
	// all equal the supplied values. A zero-row result is reported as
	// domain.ErrInvalidCredentials, a connectivity failure as
	// domain.ErrStoreUnavailable, and any other store error as
	// domain.ErrAuthFailed.
	FindByCredentials(ctx context.Context, field1, field2 string, role int) (*UserRecord, error)

	// CreateUser inserts a new record. A record with the same (field1, role)
	// pair is reported as domain.ErrDoctorExists.
	CreateUser(ctx context.Context, field1, field2 string, role int, data domain.DashboardData) (*UserRecord, error)

	// RecordSignIn appends to the sign-in audit trail.
	RecordSignIn(ctx context.Context, event *SignInEvent) error
}
