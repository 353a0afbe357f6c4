package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/notably/notes-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the resolved username into the
// request context. A missing Authorization header or missing token segment
// yields 401; a token that is present but fails verification yields 403.
// Downstream handlers run only after successful verification.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			// Malformed and tampered tokens are rejected identically.
			username, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			c.Set("username", username)
			return next(c)
		}
	}
}
