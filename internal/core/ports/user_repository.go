package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// UserRepository defines persistence for identity records.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create inserts a new user and returns it with its assigned id.
	// A duplicate email maps to domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateStatus sets the account status on an existing user.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	// ListByRole returns all users carrying the given role.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
