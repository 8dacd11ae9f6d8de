package handler

import "time"

type feedbackRequest struct {
	First   string   `json:"first"   validate:"required"`
	Last    string   `json:"last"    validate:"required"`
	Email   string   `json:"email"   validate:"required,email"`
	Role    string   `json:"role"`
	Notes   string   `json:"notes"`
	Quality int      `json:"quality" validate:"required,min=1,max=5"`
	Support int      `json:"support" validate:"required,min=1,max=5"`
	Useful  []string `json:"useful"`
	Missing []string `json:"missing"`
}

// feedbackUpdateRequest carries only the review fields an owner may change.
type feedbackUpdateRequest struct {
	Notes   string   `json:"notes"`
	Quality int      `json:"quality" validate:"required,min=1,max=5"`
	Support int      `json:"support" validate:"required,min=1,max=5"`
	Useful  []string `json:"useful"`
	Missing []string `json:"missing"`
}

type feedbackRowResponse struct {
	ID             string    `json:"id"`
	First          string    `json:"first"`
	Last           string    `json:"last"`
	Email          string    `json:"email"`
	Role           string    `json:"role,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Quality        int       `json:"quality"`
	Support        int       `json:"support"`
	Useful         []string  `json:"useful,omitempty"`
	Missing        []string  `json:"missing,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	ComputedRating float64   `json:"computed_rating"`
}

type feedbackSummaryResponse struct {
	Total    int                `json:"total"`
	ByStars  map[int]int64      `json:"by_stars"`
	Averages map[string]float64 `json:"averages"`
}
