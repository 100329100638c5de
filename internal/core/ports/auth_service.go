package ports

import (
	"context"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// AuthResult is returned on a successful sign-in.
type AuthResult struct {
	// Token is the signed bearer token the client presents on later requests.
	Token string
	// SessionKey addresses the durable mirror entries for this session.
	SessionKey string
	Session    *domain.Session
}

// AuthService normalizes every sign-in attempt into a session or one of the
// domain's credential errors.
type AuthService interface {
	Authenticate(ctx context.Context, field1, field2 string, userType domain.UserType) (*AuthResult, error)
}
