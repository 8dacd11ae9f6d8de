package ports

import (
	"context"
	"time"

	"github.com/carenet/carenet-api/internal/core/domain"
)

// FeedbackInput carries a feedback submission or update.
type FeedbackInput struct {
	First   string
	Last    string
	Email   string
	Role    string
	Notes   string
	Quality int
	Support int
	Useful  []string
	Missing []string
}

// FeedbackRow is the admin table view, enriched with the computed rating.
type FeedbackRow struct {
	ID             string
	First          string
	Last           string
	Email          string
	Role           string
	Notes          string
	Quality        int
	Support        int
	Useful         []string
	Missing        []string
	CreatedAt      time.Time
	ComputedRating float64
}

// FeedbackSummary backs the admin dashboard cards and star bars.
type FeedbackSummary struct {
	Total    int
	ByStars  map[int]int64      // star (1..5) -> count of submissions
	Averages map[string]float64 // category ("quality", "support") -> average
}

// FeedbackService covers submission, owner access, and admin moderation.
type FeedbackService interface {
	Submit(ctx context.Context, in FeedbackInput) (*domain.Feedback, error)
	ListOwn(ctx context.Context, email string) ([]*domain.Feedback, error)
	GetOwn(ctx context.Context, id, email string) (*domain.Feedback, error)
	UpdateOwn(ctx context.Context, id, email string, in FeedbackInput) (*domain.Feedback, error)

	ListRows(ctx context.Context) ([]FeedbackRow, error)
	Summary(ctx context.Context) (*FeedbackSummary, error)
	Delete(ctx context.Context, id string) error
}
