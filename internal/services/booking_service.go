package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kchitera56/bakholokoe-website/internal/db"
	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// IBookingService defines the interface for booking operations.
type IBookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	ListByUser(ctx context.Context, userEmail string) ([]models.Booking, error)
}

const bookingsCollection = "bookings"

// bookingService implements IBookingService.
type bookingService struct {
	db *mongo.Database
}

// NewBookingService creates a new BookingService.
func NewBookingService(db *mongo.Database) IBookingService {
	return &bookingService{db: db}
}

// CreateBooking appends one booking record under its category. The record gets
// a fresh SixID; inserts are retried on the (unlikely) ID collision.
func (s *bookingService) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	collection := s.db.Collection(bookingsCollection)
	booking.CreatedAt = time.Now().UTC()

	operation := func() error {
		booking.ID = utils.NewSixID()
		_, insertErr := collection.InsertOne(ctx, &booking)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("error inserting %s booking for %s: %w", booking.Category, booking.UserEmail, err)
	}
	return &booking, nil
}

// ListByUser returns all bookings submitted by the given user, newest first.
func (s *bookingService) ListByUser(ctx context.Context, userEmail string) ([]models.Booking, error) {
	collection := s.db.Collection(bookingsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{"user": userEmail}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for %s: %w", userEmail, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings for %s: %w", userEmail, err)
	}
	return bookings, nil
}
