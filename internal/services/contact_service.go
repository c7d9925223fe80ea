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

// IContactService defines the interface for contact message operations.
type IContactService interface {
	CreateMessage(ctx context.Context, name, email, phone, message string) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

const contactMessagesCollection = "contact_messages"

// contactService implements IContactService.
type contactService struct {
	db *mongo.Database
}

// NewContactService creates a new ContactService.
func NewContactService(db *mongo.Database) IContactService {
	return &contactService{db: db}
}

// CreateMessage appends one contact message, stamped with the current time.
func (s *contactService) CreateMessage(ctx context.Context, name, email, phone, message string) (*models.ContactMessage, error) {
	collection := s.db.Collection(contactMessagesCollection)
	doc := &models.ContactMessage{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	operation := func() error {
		doc.ID = utils.NewSixID()
		_, insertErr := collection.InsertOne(ctx, doc)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("error inserting contact message from %s: %w", email, err)
	}
	return doc, nil
}

// ListMessages returns all contact messages ordered by timestamp descending.
// Timestamps are RFC 3339 strings, so the store-side sort is lexicographic and
// records with no timestamp sort last (oldest).
func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	collection := s.db.Collection(contactMessagesCollection)

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding contact messages: %w", err)
	}
	return messages, nil
}
