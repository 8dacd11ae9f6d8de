package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/api/metrics"
	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/password"
	"github.com/carenet/carenet-api/internal/core/ports"
	"github.com/carenet/carenet-api/internal/core/token"
)

// AuthService implements registration and login. Unknown email, wrong
// password, and deactivated accounts all collapse to the same generic
// invalid-credentials error so callers cannot enumerate users.
type AuthService struct {
	users  ports.UserRepository
	issuer *token.Issuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleCareSeeker
	if in.Role != "" {
		parsed, err := domain.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		City:         in.City,
		Address:      in.Address,
		Roles:        []domain.Role{role},
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	signed, err := s.issuer.Issue(created.ID, created.Email, created.RoleNames())
	if err != nil {
		s.log.Error().Err(err).Msg("token issuance failed after registration")
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")

	return &ports.AuthResult{Token: signed, User: created}, nil
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !password.Matches(pass, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Deactivated accounts cannot obtain new tokens. Tokens issued before
	// deactivation stay valid until natural expiry.
	if !user.IsActive() {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Warn().Str("user_id", user.ID).Msg("login refused for deactivated account")
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID, user.Email, user.RoleNames())
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: signed, User: user}, nil
}
