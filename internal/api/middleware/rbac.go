package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicall/telehealth-api/internal/core/domain"
)

// RBAC restricts a route to sessions of the given user types. Must run after
// Auth.
func RBAC(allowedTypes ...domain.UserType) echo.MiddlewareFunc {
	allowed := make(map[domain.UserType]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := c.Get(CtxSession).(*domain.Session)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[session.UserType]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
