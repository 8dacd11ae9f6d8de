package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carenet/carenet-api/internal/api/metrics"
	"github.com/carenet/carenet-api/internal/core/domain"
	"github.com/carenet/carenet-api/internal/core/ports"
)

// DirectoryCache abstracts the read-through cache (Redis) in front of the
// public caregiver directory.
type DirectoryCache interface {
	GetCards(ctx context.Context) ([]ports.CaregiverCard, bool, error)
	SetCards(ctx context.Context, cards []ports.CaregiverCard) error
	Invalidate(ctx context.Context) error
}

type caregiverProfileService struct {
	profiles ports.CaregiverProfileRepository
	users    ports.UserRepository
	cache    DirectoryCache
	log      zerolog.Logger
}

// NewCaregiverProfileService returns a CaregiverProfileService implementation.
func NewCaregiverProfileService(
	profiles ports.CaregiverProfileRepository,
	users ports.UserRepository,
	cache DirectoryCache,
	log zerolog.Logger,
) ports.CaregiverProfileService {
	return &caregiverProfileService{profiles: profiles, users: users, cache: cache, log: log}
}

// GetOwn returns the caller's profile, creating an empty one seeded from the
// user record on first access.
func (s *caregiverProfileService) GetOwn(ctx context.Context, email string) (*domain.CaregiverProfile, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	bootstrap := &domain.CaregiverProfile{Email: email, UpdatedAt: time.Now().UTC()}
	if user, uerr := s.users.FindByEmail(ctx, email); uerr == nil {
		bootstrap.Username = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	created, err := s.profiles.Upsert(ctx, bootstrap)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", email).Msg("caregiver profile bootstrapped")
	return created, nil
}

func (s *caregiverProfileService) UpdateOwn(ctx context.Context, email string, in ports.CaregiverProfileInput) (*domain.CaregiverProfile, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		profile = &domain.CaregiverProfile{Email: email}
	}

	// only owner-editable fields are overwritten; email stays fixed
	profile.Username = in.Username
	profile.AvatarURL = in.AvatarURL
	profile.Tagline = in.Tagline
	profile.About = in.About
	profile.Languages = in.Languages
	profile.Certifications = in.Certifications
	profile.WorkHistory = in.WorkHistory
	profile.ServiceRadius = in.ServiceRadius
	profile.Years = in.Years
	profile.Skills = in.Skills
	profile.UpdatedAt = time.Now().UTC()

	saved, err := s.profiles.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("directory cache invalidation failed")
	}
	return saved, nil
}

func (s *caregiverProfileService) ListPublic(ctx context.Context) ([]ports.CaregiverCard, error) {
	cards, hit, err := s.cache.GetCards(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("directory cache read failed, falling back to store")
	} else if hit {
		metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
		return cards, nil
	}
	metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()

	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	cards = make([]ports.CaregiverCard, 0, len(profiles))
	for _, p := range profiles {
		cards = append(cards, ports.CaregiverCard{
			ID:        p.ID,
			Username:  p.Username,
			AvatarURL: p.AvatarURL,
			Tagline:   p.Tagline,
			Skills:    p.Skills,
			Languages: p.Languages,
		})
	}

	if err := s.cache.SetCards(ctx, cards); err != nil {
		s.log.Warn().Err(err).Msg("directory cache write failed")
	}
	return cards, nil
}

func (s *caregiverProfileService) GetPublic(ctx context.Context, id string) (*domain.CaregiverProfile, error) {
	return s.profiles.FindByID(ctx, id)
}

type careSeekerProfileService struct {
	profiles ports.CareSeekerProfileRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

// NewCareSeekerProfileService returns a CareSeekerProfileService implementation.
func NewCareSeekerProfileService(
	profiles ports.CareSeekerProfileRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) ports.CareSeekerProfileService {
	return &careSeekerProfileService{profiles: profiles, users: users, log: log}
}

// GetOwn returns the stored profile, or an unsaved one derived from the user
// record when the care seeker has not filled anything in yet.
func (s *careSeekerProfileService) GetOwn(ctx context.Context, userID string) (*domain.CareSeekerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	fallback := &domain.CareSeekerProfile{UserID: userID}
	if user, uerr := s.users.FindByID(ctx, userID); uerr == nil {
		fallback.Email = user.Email
		fallback.FirstName = user.FirstName
		fallback.LastName = user.LastName
	}
	return fallback, nil
}

func (s *careSeekerProfileService) UpdateOwn(ctx context.Context, userID string, in ports.CareSeekerProfileInput) (*domain.CareSeekerProfile, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		profile = &domain.CareSeekerProfile{UserID: userID}
		if user, uerr := s.users.FindByID(ctx, userID); uerr == nil {
			profile.Email = user.Email
			profile.FirstName = user.FirstName
			profile.LastName = user.LastName
		}
	}

	// partial update: nil pointers leave the stored value untouched
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = *in.AvatarURL
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.Gender != nil {
		profile.Gender = *in.Gender
	}
	if in.DOB != nil {
		profile.DOB = *in.DOB
	}
	if in.CareTypes != nil {
		types := make([]string, 0, len(in.CareTypes))
		for _, t := range in.CareTypes {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				types = append(types, trimmed)
			}
		}
		profile.CareTypes = types
	}
	profile.UpdatedAt = time.Now().UTC()

	return s.profiles.Upsert(ctx, profile)
}
