package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// CaregiverProfileRepository persists caregiver profiles, keyed by the owning
// user's email.
type CaregiverProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.CaregiverProfile, error)
	FindByID(ctx context.Context, id string) (*domain.CaregiverProfile, error)
	// ListAll returns every caregiver profile for the public directory.
	ListAll(ctx context.Context) ([]*domain.CaregiverProfile, error)
	// Upsert inserts or replaces the profile for its email and returns the
	// stored document with its id.
	Upsert(ctx context.Context, profile *domain.CaregiverProfile) (*domain.CaregiverProfile, error)
}

// CareSeekerProfileRepository persists care-seeker profiles, keyed by user id.
type CareSeekerProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.CareSeekerProfile, error)
	Upsert(ctx context.Context, profile *domain.CareSeekerProfile) (*domain.CareSeekerProfile, error)
}
