package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// CaregiverProfileInput carries the owner-editable caregiver profile fields.
type CaregiverProfileInput struct {
	Username       string
	AvatarURL      string
	Tagline        string
	About          string
	Languages      []domain.Language
	Certifications []domain.Certification
	WorkHistory    []domain.WorkEntry
	ServiceRadius  string
	Years          string
	Skills         []string
}

// CaregiverCard is the lightweight directory view used by the public list.
type CaregiverCard struct {
	ID        string
	Username  string
	AvatarURL string
	Tagline   string
	Skills    []string
	Languages []domain.Language
}

// CaregiverProfileService covers the caregiver's own profile plus the public
// directory consumed by care seekers.
type CaregiverProfileService interface {
	// GetOwn returns the caller's profile, bootstrapping an empty one from
	// the user record on first access.
	GetOwn(ctx context.Context, email string) (*domain.CaregiverProfile, error)
	UpdateOwn(ctx context.Context, email string, in CaregiverProfileInput) (*domain.CaregiverProfile, error)
	ListPublic(ctx context.Context) ([]CaregiverCard, error)
	GetPublic(ctx context.Context, id string) (*domain.CaregiverProfile, error)
}

// CareSeekerProfileInput carries the owner-editable care-seeker fields.
// Nil pointer fields are left unchanged, mirroring a partial update.
type CareSeekerProfileInput struct {
	Phone     *string
	AvatarURL *string
	Location  *string
	Gender    *string
	DOB       *string // yyyy-mm-dd
	CareTypes []string
}

// CareSeekerProfileService covers a care seeker's own profile.
type CareSeekerProfileService interface {
	// GetOwn returns the caller's profile; when none is stored yet, an
	// unsaved profile derived from the user record is returned.
	GetOwn(ctx context.Context, userID string) (*domain.CareSeekerProfile, error)
	UpdateOwn(ctx context.Context, userID string, in CareSeekerProfileInput) (*domain.CareSeekerProfile, error)
}
