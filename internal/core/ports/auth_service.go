package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	City      string
	Address   string
	Role      string // raw role name; empty defaults to CARE_SEEKER
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements credential verification and token issuance.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
