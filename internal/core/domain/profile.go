package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Language is a spoken language with a proficiency level
// ("Basic", "Conversational", "Fluent", "Native").
type Language struct {
	Lang  string `json:"lang" bson:"lang"`
	Level string `json:"level" bson:"level"`
}

// Certification is a named credential held by a caregiver.
type Certification struct {
	Name   string `json:"name" bson:"name"`
	Issuer string `json:"issuer" bson:"issuer"`
	Year   string `json:"year" bson:"year"`
}

// WorkEntry is one position in a caregiver's work history. From/To are
// free-form ("2022", "Present").
type WorkEntry struct {
	Role    string `json:"role" bson:"role"`
	Company string `json:"company" bson:"company"`
	From    string `json:"from" bson:"from"`
	To      string `json:"to" bson:"to"`
}

// CaregiverProfile is the public-facing profile a caregiver curates.
// It is keyed by the owning user's email.
type CaregiverProfile struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	AvatarURL      string          `json:"avatar_url"`
	Tagline        string          `json:"tagline"`
	About          string          `json:"about"`
	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	WorkHistory    []WorkEntry     `json:"work_history"`
	ServiceRadius  string          `json:"service_radius"`
	Years          string          `json:"years"`
	Skills         []string        `json:"skills"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CareSeekerProfile holds a care seeker's contact and preference details.
// It is keyed by the owning user's id.
type CareSeekerProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	Location  string    `json:"location"`
	Gender    string    `json:"gender"`
	DOB       string    `json:"dob"` // yyyy-mm-dd
	CareTypes []string  `json:"care_types"`
	UpdatedAt time.Time `json:"updated_at"`
}
