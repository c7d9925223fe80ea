package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kchitera56/bakholokoe-website/internal/db"
	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// ErrDuplicateReview is returned when a user who has already reviewed tries again.
var ErrDuplicateReview = errors.New("review already submitted by this user")

// IReviewService defines the interface for review operations.
type IReviewService interface {
	HasReviewBy(ctx context.Context, userEmail string) (bool, error)
	CreateReview(ctx context.Context, userEmail, name, review, rating string) (*models.Review, error)
}

const reviewsCollection = "reviews"

// reviewService implements IReviewService.
type reviewService struct {
	db *mongo.Database
}

// NewReviewService creates a new ReviewService.
func NewReviewService(db *mongo.Database) IReviewService {
	return &reviewService{db: db}
}

// HasReviewBy reports whether the given user has already submitted a review.
// Indexed lookup on the user field; the review set stays small either way.
func (s *reviewService) HasReviewBy(ctx context.Context, userEmail string) (bool, error) {
	collection := s.db.Collection(reviewsCollection)
	count, err := collection.CountDocuments(ctx, bson.M{"user": userEmail})
	if err != nil {
		return false, fmt.Errorf("error checking existing review for %s: %w", userEmail, err)
	}
	return count > 0, nil
}

// CreateReview appends one review after the one-per-user gate.
// Returns ErrDuplicateReview without writing if the user already has a review.
//
// The check-then-insert window is not atomic: two concurrent submissions by
// the same user can still both pass. Accepted as-is; reviews are rare enough
// that a partial unique index is not worth the migration.
func (s *reviewService) CreateReview(ctx context.Context, userEmail, name, review, rating string) (*models.Review, error) {
	exists, err := s.HasReviewBy(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	collection := s.db.Collection(reviewsCollection)
	doc := &models.Review{
		UserEmail: userEmail,
		Name:      name,
		Review:    review,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}

	operation := func() error {
		doc.ID = utils.NewSixID()
		_, insertErr := collection.InsertOne(ctx, doc)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("error inserting review for %s: %w", userEmail, err)
	}
	return doc, nil
}
