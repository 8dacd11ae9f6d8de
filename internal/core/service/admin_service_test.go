package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		FirstName: "Test",
		Email:     email,
		Phone:     "0771234567",
		Roles:     []domain.Role{role},
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestAdminService_UpdateUserStatus(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())
	u := seedUser(t, repo, "g@x.com", domain.RoleCaregiver)

	if err := svc.UpdateUserStatus(context.Background(), u.ID, "DEACTIVATED"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != domain.StatusDeactivated {
		t.Fatalf("expected DEACTIVATED, got %s", stored.Status)
	}

	// lowercase input is accepted
	if err := svc.UpdateUserStatus(context.Background(), u.ID, "active"); err != nil {
		t.Fatalf("update status: %v", err)
	}
}

func TestAdminService_UpdateUserStatus_InvalidValue(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())
	u := seedUser(t, repo, "g@x.com", domain.RoleCaregiver)

	err := svc.UpdateUserStatus(context.Background(), u.ID, "BANNED")
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	// rejected before any persistence
	if repo.statusUpdates != 0 {
		t.Fatalf("no write may happen for an invalid status, saw %d", repo.statusUpdates)
	}
	stored, _ := repo.FindByID(context.Background(), u.ID)
	if stored.Status != domain.StatusActive {
		t.Fatalf("status must be unchanged, got %s", stored.Status)
	}
}

func TestAdminService_UpdateUserStatus_UnknownUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())

	if err := svc.UpdateUserStatus(context.Background(), "missing", "ACTIVE"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAdminService(repo, zerolog.Nop())
	seedUser(t, repo, "g1@x.com", domain.RoleCaregiver)
	seedUser(t, repo, "g2@x.com", domain.RoleCaregiver)
	seedUser(t, repo, "s1@x.com", domain.RoleCareSeeker)

	rows, err := svc.ListUsers(context.Background(), domain.RoleCaregiver)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 caregiver rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Status != "ACTIVE" {
			t.Fatalf("expected ACTIVE status, got %s", row.Status)
		}
		if row.ID == "" || row.Email == "" {
			t.Fatalf("incomplete row: %+v", row)
		}
	}
}
