package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carenet/carenet-api/internal/core/token"
)

func newTestVerifier(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return issuer
}

func runAuth(t *testing.T, verifier *token.Issuer, header string) (*Identity, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		identity *Identity
		present  bool
		called   bool
	)
	handler := Auth(verifier)(func(c echo.Context) error {
		called = true
		identity, present = IdentityFrom(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next must always be called: auth fails closed to anonymous")
	}
	return identity, present
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t)
	signed, err := verifier.Issue("user-1", "a@x.com", []string{"CAREGIVER", "ROLE_ADMIN"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	identity, ok := runAuth(t, verifier, "Bearer "+signed)
	if !ok {
		t.Fatalf("expected authenticated identity")
	}
	if identity.SubjectID != "user-1" {
		t.Fatalf("expected subject user-1, got %s", identity.SubjectID)
	}
	if identity.Email != "a@x.com" {
		t.Fatalf("expected email claim, got %s", identity.Email)
	}
	// raw and pre-prefixed role names normalize to the same authority form
	if !identity.HasAuthority("CAREGIVER") || !identity.HasAuthority("ROLE_CAREGIVER") {
		t.Fatalf("expected caregiver authority, got %v", identity.Authorities)
	}
	if !identity.HasAuthority("ADMIN") {
		t.Fatalf("expected admin authority, got %v", identity.Authorities)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	if _, ok := runAuth(t, newTestVerifier(t), ""); ok {
		t.Fatalf("missing header must yield anonymous request")
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	if _, ok := runAuth(t, newTestVerifier(t), "Token abc"); ok {
		t.Fatalf("non-bearer scheme must yield anonymous request")
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	if _, ok := runAuth(t, newTestVerifier(t), "Bearer not-a-token"); ok {
		t.Fatalf("malformed token must yield anonymous request")
	}
}

func TestAuth_TamperedToken(t *testing.T) {
	verifier := newTestVerifier(t)
	signed, err := verifier.Issue("user-1", "a@x.com", []string{"ADMIN"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts := strings.Split(signed, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, ok := runAuth(t, verifier, "Bearer "+tampered); ok {
		t.Fatalf("tampered token must yield anonymous request")
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	verifier := newTestVerifier(t)

	// correctly signed but already past its exp claim
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, ok := runAuth(t, verifier, "Bearer "+expired); ok {
		t.Fatalf("expired token must yield anonymous request")
	}
}
