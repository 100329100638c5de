package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// UserType identifies which kind of actor is signing in. It determines the
// credential format rules and which dashboard is rendered.
type UserType string

const (
	UserTypePatient   UserType = "Patient"
	UserTypeDoctor    UserType = "Doctor"
	UserTypeHospital  UserType = "Hospital"
	UserTypeInsurance UserType = "Insurance"
)

// roleIndexes is the fixed UserType ↔ role-index bijection. The record store
// discriminates users on the integer, so the mapping must never change.
var roleIndexes = map[UserType]int{
	UserTypePatient:   0,
	UserTypeDoctor:    1,
	UserTypeHospital:  2,
	UserTypeInsurance: 3,
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAuthFailed = errors.New("authentication failed")
var ErrStoreUnavailable = errors.New("record store unavailable")
var ErrValidation = errors.New("credentials do not meet format requirements")
var ErrNoSession = errors.New("no active session")
var ErrForbidden = errors.New("access forbidden")
var ErrDoctorExists = errors.New("doctor account already exists")
var ErrUnknownUserType = errors.New("unknown user type")

// Valid reports whether t is one of the four known user types.
func (t UserType) Valid() bool {
	_, ok := roleIndexes[t]
	return ok
}

// RoleIndex returns the record store's integer discriminator for t.
func (t UserType) RoleIndex() (int, error) {
	idx, ok := roleIndexes[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUserType, string(t))
	}
	return idx, nil
}

// UserTypeForRole is the inverse of RoleIndex.
func UserTypeForRole(role int) (UserType, error) {
	for t, idx := range roleIndexes {
		if idx == role {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: role index %d", ErrUnknownUserType, role)
}

// ParseUserType converts a wire string into a UserType.
func ParseUserType(s string) (UserType, error) {
	t := UserType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownUserType, s)
	}
	return t, nil
}

// Session is the authenticated identity. It is created only by a successful
// authentication lookup and carries the credential values as stored, the
// numeric role index, the semantic UserType tag supplied at sign-in, and the
// role-shaped dashboard payload.
type Session struct {
	ID       int64
	Field1   string
	Field2   string
	Role     int
	UserType UserType
	Data     DashboardData // nil when the stored record carries no payload
}

// sessionJSON is the wire/mirror shape of a Session. Field names match the
// snapshot format written by earlier clients, so old mirrors stay readable.
type sessionJSON struct {
	ID       int64           `json:"id"`
	Field1   string          `json:"field1"`
	Field2   string          `json:"field2"`
	Role     int             `json:"role"`
	UserType UserType        `json:"userType"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON serializes the session as a full snapshot, payload included.
func (s Session) MarshalJSON() ([]byte, error) {
	out := sessionJSON{
		ID:       s.ID,
		Field1:   s.Field1,
		Field2:   s.Field2,
		Role:     s.Role,
		UserType: s.UserType,
	}
	if s.Data != nil {
		raw, err := json.Marshal(s.Data)
		if err != nil {
			return nil, fmt.Errorf("marshal session data: %w", err)
		}
		out.Data = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a session snapshot. The payload is decoded by the
// session's UserType tag, never guessed from its shape; a snapshot with an
// unknown user type or an undecodable payload is rejected whole.
func (s *Session) UnmarshalJSON(b []byte) error {
	var in sessionJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if !in.UserType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUserType, string(in.UserType))
	}

	s.ID = in.ID
	s.Field1 = in.Field1
	s.Field2 = in.Field2
	s.Role = in.Role
	s.UserType = in.UserType
	s.Data = nil

	if len(in.Data) > 0 && string(in.Data) != "null" {
		data, err := DecodeDashboardJSON(in.UserType, in.Data)
		if err != nil {
			return fmt.Errorf("decode session data: %w", err)
		}
		s.Data = data
	}
	return nil
}
