package handler

import "github.com/medicall/telehealth-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	UserType string `json:"userType" validate:"required,oneof=Patient Doctor Hospital Insurance"`
	Field1   string `json:"field1"   validate:"required"`
	Field2   string `json:"field2"   validate:"required"`
}

// sessionResponse is the wire view of an authenticated session. Field names
// match the snapshot format so clients can persist the object as-is.
type sessionResponse struct {
	ID       int64                `json:"id"`
	Field1   string               `json:"field1"`
	Field2   string               `json:"field2"`
	Role     int                  `json:"role"`
	UserType string               `json:"userType"`
	Data     domain.DashboardData `json:"data,omitempty"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  sessionResponse `json:"user"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:       s.ID,
		Field1:   s.Field1,
		Field2:   s.Field2,
		Role:     s.Role,
		UserType: string(s.UserType),
		Data:     s.Data,
	}
}
