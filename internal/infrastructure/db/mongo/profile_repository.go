package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carenet/carenet-api/internal/core/domain"
)

const (
	caregiverProfilesCollection  = "caregiver_profiles"
	careSeekerProfilesCollection = "careseeker_profiles"
)

// CaregiverProfileRepository stores caregiver profiles keyed by the owning
// user's email.
type CaregiverProfileRepository struct {
	coll *mongo.Collection
}

func NewCaregiverProfileRepository(db *mongo.Database) *CaregiverProfileRepository {
	return &CaregiverProfileRepository{coll: db.Collection(caregiverProfilesCollection)}
}

type mongoCaregiverProfile struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty"`
	Email          string                 `bson:"email"`
	Username       string                 `bson:"username"`
	AvatarURL      string                 `bson:"avatar_url,omitempty"`
	Tagline        string                 `bson:"tagline,omitempty"`
	About          string                 `bson:"about,omitempty"`
	Languages      []domain.Language      `bson:"languages,omitempty"`
	Certifications []domain.Certification `bson:"certifications,omitempty"`
	WorkHistory    []domain.WorkEntry     `bson:"work_history,omitempty"`
	ServiceRadius  string                 `bson:"service_radius,omitempty"`
	Years          string                 `bson:"years,omitempty"`
	Skills         []string               `bson:"skills,omitempty"`
	UpdatedAt      int64                  `bson:"updated_at"`
}

func (r *CaregiverProfileRepository) FindByEmail(ctx context.Context, email string) (*domain.CaregiverProfile, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CaregiverProfileRepository) FindByID(ctx context.Context, id string) (*domain.CaregiverProfile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CaregiverProfileRepository) findOne(ctx context.Context, filter bson.M) (*domain.CaregiverProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoCaregiverProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find caregiver profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *CaregiverProfileRepository) ListAll(ctx context.Context) ([]*domain.CaregiverProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list caregiver profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.CaregiverProfile
	for cur.Next(ctx) {
		var mp mongoCaregiverProfile
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode caregiver profile: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate caregiver profiles: %w", err)
	}
	return out, nil
}

// Upsert replaces the profile stored under its email, inserting on first
// write, and returns the stored document with its id.
func (r *CaregiverProfileRepository) Upsert(ctx context.Context, profile *domain.CaregiverProfile) (*domain.CaregiverProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCaregiverProfile{
		Email:          profile.Email,
		Username:       profile.Username,
		AvatarURL:      profile.AvatarURL,
		Tagline:        profile.Tagline,
		About:          profile.About,
		Languages:      profile.Languages,
		Certifications: profile.Certifications,
		WorkHistory:    profile.WorkHistory,
		ServiceRadius:  profile.ServiceRadius,
		Years:          profile.Years,
		Skills:         profile.Skills,
		UpdatedAt:      time.Now().UTC().Unix(),
	}

	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored mongoCaregiverProfile
	err := r.coll.FindOneAndReplace(ctx, bson.M{"email": profile.Email}, doc, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("upsert caregiver profile: %w", err)
	}
	return stored.toDomain(), nil
}

func (mp *mongoCaregiverProfile) toDomain() *domain.CaregiverProfile {
	return &domain.CaregiverProfile{
		ID:             mp.ID.Hex(),
		Email:          mp.Email,
		Username:       mp.Username,
		AvatarURL:      mp.AvatarURL,
		Tagline:        mp.Tagline,
		About:          mp.About,
		Languages:      mp.Languages,
		Certifications: mp.Certifications,
		WorkHistory:    mp.WorkHistory,
		ServiceRadius:  mp.ServiceRadius,
		Years:          mp.Years,
		Skills:         mp.Skills,
		UpdatedAt:      unixToTime(mp.UpdatedAt),
	}
}

// CareSeekerProfileRepository stores care-seeker profiles keyed by user id.
type CareSeekerProfileRepository struct {
	coll *mongo.Collection
}

func NewCareSeekerProfileRepository(db *mongo.Database) *CareSeekerProfileRepository {
	return &CareSeekerProfileRepository{coll: db.Collection(careSeekerProfilesCollection)}
}

type mongoCareSeekerProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Email     string             `bson:"email"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Phone     string             `bson:"phone,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty"`
	Location  string             `bson:"location,omitempty"`
	Gender    string             `bson:"gender,omitempty"`
	DOB       string             `bson:"dob,omitempty"`
	CareTypes []string           `bson:"care_types,omitempty"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (r *CareSeekerProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.CareSeekerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoCareSeekerProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find careseeker profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *CareSeekerProfileRepository) Upsert(ctx context.Context, profile *domain.CareSeekerProfile) (*domain.CareSeekerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCareSeekerProfile{
		UserID:    profile.UserID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     profile.Phone,
		AvatarURL: profile.AvatarURL,
		Location:  profile.Location,
		Gender:    profile.Gender,
		DOB:       profile.DOB,
		CareTypes: profile.CareTypes,
		UpdatedAt: time.Now().UTC().Unix(),
	}

	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored mongoCareSeekerProfile
	err := r.coll.FindOneAndReplace(ctx, bson.M{"user_id": profile.UserID}, doc, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("upsert careseeker profile: %w", err)
	}
	return stored.toDomain(), nil
}

func (mp *mongoCareSeekerProfile) toDomain() *domain.CareSeekerProfile {
	return &domain.CareSeekerProfile{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID,
		Email:     mp.Email,
		FirstName: mp.FirstName,
		LastName:  mp.LastName,
		Phone:     mp.Phone,
		AvatarURL: mp.AvatarURL,
		Location:  mp.Location,
		Gender:    mp.Gender,
		DOB:       mp.DOB,
		CareTypes: mp.CareTypes,
		UpdatedAt: unixToTime(mp.UpdatedAt),
	}
}
