package handler

import (
	"time"

	"github.com/carenet/carenet-api/internal/core/domain"
)

type languageRequest struct {
	Lang  string `json:"lang"  validate:"required"`
	Level string `json:"level" validate:"required,oneof=Basic Conversational Fluent Native"`
}

type certificationRequest struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type workEntryRequest struct {
	Role    string `json:"role" validate:"required"`
	Company string `json:"company"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type caregiverProfileRequest struct {
	Username       string                 `json:"username"       validate:"required"`
	AvatarURL      string                 `json:"avatar_url"`
	Tagline        string                 `json:"tagline"`
	About          string                 `json:"about"`
	Languages      []languageRequest      `json:"languages"      validate:"dive"`
	Certifications []certificationRequest `json:"certifications" validate:"dive"`
	WorkHistory    []workEntryRequest     `json:"work_history"   validate:"dive"`
	ServiceRadius  string                 `json:"service_radius"`
	Years          string                 `json:"years"`
	Skills         []string               `json:"skills"`
}

// caregiverCardResponse is the lightweight directory item; the full profile
// is fetched separately by id.
type caregiverCardResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	AvatarURL string            `json:"avatar_url,omitempty"`
	Tagline   string            `json:"tagline,omitempty"`
	Skills    []string          `json:"skills,omitempty"`
	Languages []domain.Language `json:"languages,omitempty"`
}

type careSeekerProfileRequest struct {
	Phone     *string  `json:"phone"`
	AvatarURL *string  `json:"avatar_url"`
	Location  *string  `json:"location"`
	Gender    *string  `json:"gender"     validate:"omitempty,oneof=Male Female Other"`
	DOB       *string  `json:"dob"        validate:"omitempty,datetime=2006-01-02"`
	CareTypes []string `json:"care_types"`
}

type careSeekerProfileResponse struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Location  string    `json:"location,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	DOB       string    `json:"dob,omitempty"`
	CareTypes []string  `json:"care_types,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
