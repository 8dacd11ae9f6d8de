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

const feedbackCollection = "feedback"

// FeedbackRepository stores platform feedback submissions.
type FeedbackRepository struct {
	coll *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{coll: db.Collection(feedbackCollection)}
}

type mongoFeedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	First     string             `bson:"first"`
	Last      string             `bson:"last"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	Quality   int                `bson:"quality"`
	Support   int                `bson:"support"`
	Useful    []string           `bson:"useful,omitempty"`
	Missing   []string           `bson:"missing,omitempty"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at,omitempty"`
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoFeedback(f)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	created := *f
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *FeedbackRepository) FindByIDAndEmail(ctx context.Context, id, email string) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mf mongoFeedback
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "email": email}).Decode(&mf)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return mf.toDomain(), nil
}

func (r *FeedbackRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Feedback, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*domain.Feedback, error) {
	return r.list(ctx, bson.M{})
}

func (r *FeedbackRepository) list(ctx context.Context, filter bson.M) ([]*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Feedback
	for cur.Next(ctx) {
		var mf mongoFeedback
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode feedback: %w", err)
		}
		out = append(out, mf.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return out, nil
}

func (r *FeedbackRepository) Update(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(f.ID)
	if err != nil {
		return nil, domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoFeedback(f)
	doc.UpdatedAt = time.Now().UTC().Unix()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFeedbackNotFound
	}

	updated := *f
	updated.UpdatedAt = unixToTime(doc.UpdatedAt)
	return &updated, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrFeedbackNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

func toMongoFeedback(f *domain.Feedback) mongoFeedback {
	return mongoFeedback{
		First:     f.First,
		Last:      f.Last,
		Email:     f.Email,
		Role:      f.Role,
		Notes:     f.Notes,
		Quality:   f.Quality,
		Support:   f.Support,
		Useful:    f.Useful,
		Missing:   f.Missing,
		CreatedAt: f.CreatedAt.Unix(),
	}
}

func (mf *mongoFeedback) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:        mf.ID.Hex(),
		First:     mf.First,
		Last:      mf.Last,
		Email:     mf.Email,
		Role:      mf.Role,
		Notes:     mf.Notes,
		Quality:   mf.Quality,
		Support:   mf.Support,
		Useful:    mf.Useful,
		Missing:   mf.Missing,
		CreatedAt: unixToTime(mf.CreatedAt),
		UpdatedAt: unixToTime(mf.UpdatedAt),
	}
}
