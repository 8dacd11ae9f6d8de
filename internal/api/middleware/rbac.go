package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// RequireAuthenticated rejects anonymous requests with 401 and lets any
// verified identity through.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := IdentityFrom(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireAuthority allows the request iff an identity exists and its
// authority set intersects the given roles. There is no role hierarchy;
// each required authority must be explicitly present.
func RequireAuthority(roles ...domain.Role) echo.MiddlewareFunc {
	required := make([]string, 0, len(roles))
	for _, r := range roles {
		required = append(required, r.Authority())
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			for _, authority := range required {
				if identity.HasAuthority(authority) {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient authority")
		}
	}
}
