package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/api/middleware"
)

// ctxIdentity extracts the authenticated identity placed in the request
// context by the Auth middleware. Routes using this helper sit behind a
// RequireAuthority guard, so a missing identity means misconfigured routing;
// it is still rejected with 401 rather than panicking.
func ctxIdentity(c echo.Context) (*middleware.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}
