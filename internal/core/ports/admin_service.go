package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// DirectoryRow is the minimal user view shown in the admin tables.
type DirectoryRow struct {
	ID        string
	FirstName string
	Email     string
	Phone     string
	Status    string
}

// AdminService covers admin moderation of user accounts.
type AdminService interface {
	// UpdateUserStatus validates rawStatus against the closed enum before
	// touching the store; an unknown value is domain.ErrInvalidStatus and no
	// write happens.
	UpdateUserStatus(ctx context.Context, userID, rawStatus string) error
	// ListUsers returns directory rows for every user carrying role.
	ListUsers(ctx context.Context, role domain.Role) ([]DirectoryRow, error)
}
