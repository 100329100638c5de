package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medicall/telehealth-api/internal/api/metrics"
	"github.com/medicall/telehealth-api/internal/api/middleware"
	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// AuthHandler exposes sign-in, sign-out and session restore.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login authenticates a credential pair for the selected user type.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials and user type"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userType, err := domain.ParseUserType(req.UserType)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown user type")
	}

	start := time.Now()
	result, err := h.authService.Authenticate(c.Request().Context(), req.Field1, req.Field2, userType)
	metrics.SignInDuration.Observe(time.Since(start).Seconds())
	metrics.SignInAttemptsTotal.WithLabelValues(string(userType), signInOutcome(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toSessionResponse(result.Session),
	})
}

// Session returns the restored session for the presented token.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Logout clears the session and both durable mirror entries.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, key, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Clear(c.Request().Context(), key); err != nil {
		return err
	}
	metrics.SignOutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// ctxSession extracts the session and its mirror key injected by the Auth
// middleware. Absence means the middleware did not run on this route.
func ctxSession(c echo.Context) (*domain.Session, string, error) {
	session, _ := c.Get(middleware.CtxSession).(*domain.Session)
	key, _ := c.Get(middleware.CtxSessionKey).(string)
	if session == nil || key == "" {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, key, nil
}

func signInOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "store_unavailable"
	default:
		return "auth_failed"
	}
}
