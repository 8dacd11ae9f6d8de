package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/api/middleware"
	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/token"
)

func newGuardedEcho(t *testing.T, issuer *token.Issuer, handlerCalled *bool) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.Use(middleware.Auth(issuer))

	admin := e.Group("/v1/admin", middleware.RequireAuthority(domain.RoleAdmin))
	admin.PUT("/caregivers/:id/status", func(c echo.Context) error {
		*handlerCalled = true
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func TestHTTPErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrInvalidRole, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrProfileNotFound, http.StatusNotFound},
		{domain.ErrFeedbackNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		e := echo.New()
		e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
		e.GET("/boom", func(c echo.Context) error { return tc.err })

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%v: invalid json: %v", tc.err, err)
		}
		if resp["error"] == "" {
			t.Fatalf("%v: missing error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("dial tcp 10.0.0.5:27017: connection refused")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp["error"])
	}
}

func TestAdminRoute_TamperedTokenIsDenied(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", 0)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	signed, err := issuer.Issue("u1", "admin@example.com", []string{"ADMIN"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// flip one character of the signature
	tampered := []byte(signed)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	var handlerCalled bool
	e := newGuardedEcho(t, issuer, &handlerCalled)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/caregivers/u2/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+string(tampered))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if handlerCalled {
		t.Fatalf("handler ran behind a tampered token")
	}
}

func TestAdminRoute_NonAdminTokenIsForbidden(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", 0)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	signed, err := issuer.Issue("u2", "nimal@example.com", []string{"CAREGIVER"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var handlerCalled bool
	e := newGuardedEcho(t, issuer, &handlerCalled)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/caregivers/u3/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if handlerCalled {
		t.Fatalf("handler ran without ADMIN authority")
	}
}

func TestAdminRoute_AdminTokenAllowed(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", 0)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	signed, err := issuer.Issue("u1", "admin@example.com", []string{"ADMIN"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var handlerCalled bool
	e := newGuardedEcho(t, issuer, &handlerCalled)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/caregivers/u2/status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !handlerCalled {
		t.Fatalf("handler never ran for a valid admin token")
	}
}
