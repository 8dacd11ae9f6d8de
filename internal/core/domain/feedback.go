package domain

import (
	"errors"
	"math"
	"time"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// Feedback is a platform feedback submission. Quality and Support are 1..5
// star ratings; Useful and Missing are feature tags picked in the form.
type Feedback struct {
	ID        string    `json:"id"`
	First     string    `json:"first"`
	Last      string    `json:"last"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"` // submitter's self-description, free text
	Notes     string    `json:"notes,omitempty"`
	Quality   int       `json:"quality"`
	Support   int       `json:"support"`
	Useful    []string  `json:"useful,omitempty"`
	Missing   []string  `json:"missing,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// OverallRating averages the two category scores into a 1..5 rating.
func (f *Feedback) OverallRating() float64 {
	return float64(f.Quality+f.Support) / 2.0
}

// OverallStars rounds the overall rating to the nearest star, clamped to 1..5.
func (f *Feedback) OverallStars() int {
	star := int(math.Round(f.OverallRating()))
	if star < 1 {
		return 1
	}
	if star > 5 {
		return 5
	}
	return star
}
