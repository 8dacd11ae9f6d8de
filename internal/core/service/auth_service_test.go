package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/password"
	"github.com/carenet/carenet-api/internal/core/ports"
	"github.com/carenet/carenet-api/internal/core/token"
)

type stubUserRepo struct {
	users         map[string]*domain.User // keyed by email
	nextID        int
	statusUpdates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) UpdateStatus(_ context.Context, id string, status domain.Status) error {
	r.statusUpdates++
	for _, u := range r.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.HasRole(role) {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *token.Issuer) {
	t.Helper()
	repo := newStubUserRepo()
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	return NewAuthService(repo, issuer, zerolog.Nop()), repo, issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, issuer := newTestAuthService(t)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Anna",
		LastName:  "Perera",
		Email:     "a@x.com",
		Password:  "secret123",
		Role:      "CARE_SEEKER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.User.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if result.User.PasswordHash == "secret123" {
		t.Fatalf("password must be hashed")
	}
	if !password.Matches("secret123", result.User.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if len(result.User.Roles) != 1 || result.User.Roles[0] != domain.RoleCareSeeker {
		t.Fatalf("unexpected roles: %v", result.User.Roles)
	}
	if result.User.Status != domain.StatusActive {
		t.Fatalf("new accounts must default to ACTIVE, got %s", result.User.Status)
	}

	claims, err := issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != result.User.ID {
		t.Fatalf("token sub %s != user id %s", claims.Subject, result.User.ID)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "CARE_SEEKER" {
		t.Fatalf("unexpected token roles: %v", claims.Roles)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "b@x.com",
		Password: "pw123456",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(result.User.Roles) != 1 || result.User.Roles[0] != domain.RoleCareSeeker {
		t.Fatalf("expected CARE_SEEKER default, got %v", result.User.Roles)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "c@x.com",
		Password: "pw123456",
		Role:     "SUPERUSER",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "dup@x.com", Password: "pw123456"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "dup@x.com", Password: "other456"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, issuer := newTestAuthService(t)

	reg, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     "CARE_SEEKER",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != reg.User.ID {
		t.Fatalf("token sub %s != registered id %s", claims.Subject, reg.User.ID)
	}
	found := false
	for _, r := range claims.Roles {
		if r == "CARE_SEEKER" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected CARE_SEEKER in token roles, got %v", claims.Roles)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "secret123"})
	result, err := svc.Login(context.Background(), "a@x.com", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if result != nil {
		t.Fatalf("no token may be issued on failed login")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// unknown email and wrong password must be indistinguishable
	if _, err := svc.Login(context.Background(), "ghost@x.com", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	reg, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), reg.User.ID, domain.StatusDeactivated); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected generic ErrInvalidCredentials for deactivated account, got %v", err)
	}
}
