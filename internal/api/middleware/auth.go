package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/medicall/telehealth-api/internal/api/metrics"
	"github.com/medicall/telehealth-api/internal/core/domain"
	"github.com/medicall/telehealth-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxSession    = "session"
	CtxSessionKey = "session_key"
)

// Auth validates the bearer token and restores the mirrored session into the
// request context. A missing, invalid or expired token — and a missing or
// corrupt session snapshot — all resolve to 401, sending the client back to
// the credential gate.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			key, _ := claims["sid"].(string)
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session key")
			}

			session, err := sessions.Restore(c.Request().Context(), key)
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					metrics.SessionRestoresTotal.WithLabelValues("none").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
				}
				return err
			}
			metrics.SessionRestoresTotal.WithLabelValues("ok").Inc()

			c.Set(CtxSession, session)
			c.Set(CtxSessionKey, key)

			return next(c)
		}
	}
}
