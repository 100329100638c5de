package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrValidation, http.StatusUnprocessableEntity, domain.ErrValidation.Error()},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials. Please check your information and try again."},
		{domain.ErrAuthFailed, http.StatusBadGateway, "Authentication failed. Please try again."},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "Network error. Please check your connection and try again."},
		{domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrDoctorExists, http.StatusConflict, "doctor already registered"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.code)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp["error"] != tc.message {
			t.Errorf("%v: message = %q, want %q", tc.err, resp["error"], tc.message)
		}
	}
}

func TestHTTPErrorHandler_WrappedSentinel(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("lookup: %w", domain.ErrStoreUnavailable), c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("wrapped sentinel: status = %d, want 503", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusNotFound, "not found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("surprise"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("unexpected cause leaked to the client: %q", resp["error"])
	}
}
