package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pixelrate/game-review-api/internal/core/ports"
)

// PrincipalKey is the echo context key the Auth middleware stores the
// verified principal under.
const PrincipalKey = "principal"

// Auth validates the bearer token and injects the principal into context.
//
// A request that carries no token at all, whether the Authorization header
// is absent or holds a bare scheme with nothing after it, is unauthenticated
// (401). A token that is present but badly signed or expired is rejected as
// forbidden (403).
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
			}
			if !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusForbidden, "invalid authorization header")
			}

			principal, err := verifier.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
