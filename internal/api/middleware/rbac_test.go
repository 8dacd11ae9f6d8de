package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/domain"
)

func contextWithIdentity(e *echo.Echo, identity *Identity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, identity)
	}
	return c, rec
}

func TestRequireAuthority_Allows(t *testing.T) {
	e := echo.New()
	c, rec := contextWithIdentity(e, &Identity{
		SubjectID:   "user-1",
		Authorities: []string{"ROLE_ADMIN"},
	})

	called := false
	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuthority_ForbidsWrongRole(t *testing.T) {
	e := echo.New()
	c, _ := contextWithIdentity(e, &Identity{
		SubjectID:   "user-1",
		Authorities: []string{"ROLE_CARE_SEEKER"},
	})

	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireAuthority_NoHierarchy(t *testing.T) {
	e := echo.New()
	// ADMIN alone must not satisfy a CAREGIVER requirement
	c, _ := contextWithIdentity(e, &Identity{
		SubjectID:   "user-1",
		Authorities: []string{"ROLE_ADMIN"},
	})

	handler := RequireAuthority(domain.RoleCaregiver)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireAuthority_AnonymousGets401(t *testing.T) {
	e := echo.New()
	c, _ := contextWithIdentity(e, nil)

	handler := RequireAuthority(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	e := echo.New()

	c, rec := contextWithIdentity(e, &Identity{SubjectID: "user-1"})
	handler := RequireAuthenticated()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = contextWithIdentity(e, nil)
	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
