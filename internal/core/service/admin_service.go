package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/ports"
)

type adminService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(users ports.UserRepository, log zerolog.Logger) ports.AdminService {
	return &adminService{users: users, log: log}
}

// UpdateUserStatus toggles an account between ACTIVE and DEACTIVATED. The raw
// value is validated against the closed enum before any lookup or write, so an
// unrecognized status never reaches the store.
func (s *adminService) UpdateUserStatus(ctx context.Context, userID, rawStatus string) error {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.users.UpdateStatus(ctx, userID, status); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Str("status", string(status)).Msg("account status updated")
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, role domain.Role) ([]ports.DirectoryRow, error) {
	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	rows := make([]ports.DirectoryRow, 0, len(users))
	for _, u := range users {
		status := u.Status
		if status == "" {
			status = domain.StatusActive
		}
		rows = append(rows, ports.DirectoryRow{
			ID:        u.ID,
			FirstName: u.FirstName,
			Email:     u.Email,
			Phone:     u.Phone,
			Status:    string(status),
		})
	}
	return rows, nil
}
