package ports

import (
	"context"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// FeedbackRepository persists feedback submissions.
type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	// FindByIDAndEmail scopes lookup to the owner; a mismatch reads as
	// domain.ErrFeedbackNotFound rather than a forbidden error.
	FindByIDAndEmail(ctx context.Context, id, email string) (*domain.Feedback, error)
	// ListByEmail returns the owner's submissions newest first.
	ListByEmail(ctx context.Context, email string) ([]*domain.Feedback, error)
	// ListAll returns every submission newest first.
	ListAll(ctx context.Context) ([]*domain.Feedback, error)
	Update(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}
