package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/api/metrics"
	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/ports"
)

type feedbackService struct {
	repo ports.FeedbackRepository
	log  zerolog.Logger
}

// NewFeedbackService returns a FeedbackService implementation.
func NewFeedbackService(repo ports.FeedbackRepository, log zerolog.Logger) ports.FeedbackService {
	return &feedbackService{repo: repo, log: log}
}

func (s *feedbackService) Submit(ctx context.Context, in ports.FeedbackInput) (*domain.Feedback, error) {
	created, err := s.repo.Create(ctx, &domain.Feedback{
		First:     in.First,
		Last:      in.Last,
		Email:     in.Email,
		Role:      in.Role,
		Notes:     in.Notes,
		Quality:   in.Quality,
		Support:   in.Support,
		Useful:    in.Useful,
		Missing:   in.Missing,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.FeedbackSubmittedTotal.Inc()
	s.log.Info().Str("feedback_id", created.ID).Int("quality", created.Quality).Int("support", created.Support).Msg("feedback submitted")
	return created, nil
}

func (s *feedbackService) ListOwn(ctx context.Context, email string) ([]*domain.Feedback, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *feedbackService) GetOwn(ctx context.Context, id, email string) (*domain.Feedback, error) {
	return s.repo.FindByIDAndEmail(ctx, id, email)
}

// UpdateOwn overwrites the review fields of a submission the caller owns.
// Name and email are immutable after submission.
func (s *feedbackService) UpdateOwn(ctx context.Context, id, email string, in ports.FeedbackInput) (*domain.Feedback, error) {
	existing, err := s.repo.FindByIDAndEmail(ctx, id, email)
	if err != nil {
		return nil, err
	}

	existing.Notes = in.Notes
	existing.Quality = in.Quality
	existing.Support = in.Support
	existing.Useful = in.Useful
	existing.Missing = in.Missing
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *feedbackService) ListRows(ctx context.Context) ([]ports.FeedbackRow, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ports.FeedbackRow, 0, len(all))
	for _, f := range all {
		rows = append(rows, ports.FeedbackRow{
			ID:             f.ID,
			First:          f.First,
			Last:           f.Last,
			Email:          f.Email,
			Role:           f.Role,
			Notes:          f.Notes,
			Quality:        f.Quality,
			Support:        f.Support,
			Useful:         f.Useful,
			Missing:        f.Missing,
			CreatedAt:      f.CreatedAt,
			ComputedRating: round1(f.OverallRating()),
		})
	}
	return rows, nil
}

// Summary aggregates all submissions into the dashboard view: total count, a
// star histogram of the rounded overall rating, and per-category averages.
func (s *feedbackService) Summary(ctx context.Context) (*ports.FeedbackSummary, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byStars := make(map[int]int64, 5)
	for star := 1; star <= 5; star++ {
		byStars[star] = 0
	}

	var sumQuality, sumSupport int
	for _, f := range all {
		byStars[f.OverallStars()]++
		sumQuality += f.Quality
		sumSupport += f.Support
	}

	averages := map[string]float64{"quality": 0, "support": 0}
	if len(all) > 0 {
		averages["quality"] = round1(float64(sumQuality) / float64(len(all)))
		averages["support"] = round1(float64(sumSupport) / float64(len(all)))
	}

	return &ports.FeedbackSummary{
		Total:    len(all),
		ByStars:  byStars,
		Averages: averages,
	}, nil
}

func (s *feedbackService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("feedback_id", id).Msg("feedback deleted by admin")
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
