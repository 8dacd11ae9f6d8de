package handler

import "github.com/carenet/carenet-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Role      string `json:"role"       validate:"omitempty,oneof=CARE_SEEKER CAREGIVER ADMIN"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse mirrors the login/register contract: the signed token plus the
// public view of the account.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
