// Package token issues and verifies the HS256 JWTs that carry a signed-in
// user's identity. Tokens are stateless: there is no revocation list, so a
// token stays valid until its expiry even if the account is deactivated.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret    = errors.New("token: signing secret must not be empty")
	ErrInvalidToken   = errors.New("token: invalid token")
	ErrTokenExpired   = errors.New("token: token expired")
	ErrMissingSubject = errors.New("token: missing subject claim")
)

// Claims is the closed claim schema embedded in every issued token. Roles are
// serialized as raw role names; prefix normalization happens at the
// authorization boundary, not here.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a single shared HMAC secret.
// Safe for concurrent use; the secret is read-only after construction.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an Issuer. An empty secret is a configuration error and
// should abort startup. A non-positive ttl falls back to one hour.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the given subject. Two calls at different instants
// produce different tokens: issued-at and expiry move with the clock.
func (i *Issuer) Issue(subjectID, email string, roles []string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and cryptographically verifies a compact token, returning its
// claims. Any failure — malformed input, wrong algorithm, bad signature,
// missing subject — yields an error; callers fail closed to anonymous.
//
// Expiry is checked explicitly against the claims: signature validity alone
// never implies liveness.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || !time.Now().UTC().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
