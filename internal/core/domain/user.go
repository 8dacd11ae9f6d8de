package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Role is a registered account's role. Accounts always carry at least one.
type Role string

const (
	RoleCareSeeker Role = "CARE_SEEKER"
	RoleCaregiver  Role = "CAREGIVER"
	RoleAdmin      Role = "ADMIN"
)

// AuthorityPrefix is prepended to role names when they cross the
// authorization boundary. Internally roles stay unprefixed.
const AuthorityPrefix = "ROLE_"

// ParseRole validates a raw role name.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCareSeeker, RoleCaregiver, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Authority returns the role in its normalized prefixed form.
func (r Role) Authority() string {
	return NormalizeAuthority(string(r))
}

// NormalizeAuthority maps a raw role name or an already-prefixed authority
// string to the canonical prefixed form. Idempotent.
func NormalizeAuthority(s string) string {
	if strings.HasPrefix(s, AuthorityPrefix) {
		return s
	}
	return AuthorityPrefix + s
}

// Status is an account's login control state.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusDeactivated Status = "DEACTIVATED"
)

// ParseStatus validates a raw status value against the closed enum.
// Matching is case-insensitive; an unrecognized value is a client error.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(s)) {
	case StatusActive:
		return StatusActive, nil
	case StatusDeactivated:
		return StatusDeactivated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrForbidden          = errors.New("access forbidden")
)

// User is the identity record behind authentication and authorization.
// PasswordHash is never serialized outward.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	City         string    `json:"city,omitempty"`
	Address      string    `json:"address,omitempty"`
	Roles        []Role    `json:"roles"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role. There is no role
// hierarchy: ADMIN does not imply CAREGIVER or CARE_SEEKER.
func (u *User) HasRole(r Role) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsActive treats a missing status as ACTIVE; documents created before the
// status field existed read as empty.
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == StatusActive
}

// RoleNames returns the raw role names, e.g. for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r)
	}
	return names
}
