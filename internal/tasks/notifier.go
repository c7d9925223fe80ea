package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/kchitera56/bakholokoe-website/internal/config"
	"github.com/kchitera56/bakholokoe-website/internal/models"
)

// INotifier enqueues the notification emails a submission produces.
// Persist durability is independent of notification outcome: callers log
// enqueue failures and carry on.
type INotifier interface {
	BookingCreated(ctx context.Context, booking models.Booking) error
	ReviewCreated(ctx context.Context, review models.Review) error
	ContactMessageReceived(ctx context.Context, msg models.ContactMessage) error
}

// notifier implements INotifier on top of an asynq client.
type notifier struct {
	cfg    *config.Config
	client *asynq.Client
}

// NewNotifier creates a new Notifier.
func NewNotifier(cfg *config.Config, client *asynq.Client) INotifier {
	return &notifier{cfg: cfg, client: client}
}

func (n *notifier) enqueue(ctx context.Context, payload EmailTaskPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}
	task := asynq.NewTask(TypeEmailDeliver, data)
	if _, err := n.client.EnqueueContext(ctx, task, asynq.Queue("default")); err != nil {
		return fmt.Errorf("failed to enqueue email to %s: %w", payload.To, err)
	}
	return nil
}

// BookingCreated enqueues the admin notification for a new booking.
func (n *notifier) BookingCreated(ctx context.Context, booking models.Booking) error {
	var subject, body string
	switch booking.Category {
	case models.CategoryHunt:
		subject = "New Hunt Booking"
		body = fmt.Sprintf("User: %s\nName: %s\nContact: %s\nDate: %s",
			booking.UserEmail, booking.FirstName, booking.Contact, booking.HuntDate)
	case models.CategoryAccommodation:
		subject = "New Accommodation Booking"
		body = fmt.Sprintf("User: %s\nName: %s\nContact: %s\nCheck-In: %s",
			booking.UserEmail, booking.FirstName, booking.Contact, booking.CheckinDate)
	case models.CategoryWater:
		subject = "New Water Order"
		body = fmt.Sprintf("User: %s\nName: %s\nContact: %s\nOrder: %s\nLocation: %s",
			booking.UserEmail, booking.FirstName, booking.Contact, booking.ProductQuantity, booking.Location)
	default:
		return fmt.Errorf("unknown booking category: %s", booking.Category)
	}

	return n.enqueue(ctx, EmailTaskPayload{
		To:      n.cfg.AdminEmail,
		Subject: subject,
		Body:    body,
	})
}

// ReviewCreated enqueues the admin notification for a new review.
func (n *notifier) ReviewCreated(ctx context.Context, review models.Review) error {
	return n.enqueue(ctx, EmailTaskPayload{
		To:      n.cfg.AdminEmail,
		Subject: "New Review Submitted",
		Body: fmt.Sprintf("User: %s\nName: %s\nRating: %s\nReview: %s",
			review.UserEmail, review.Name, review.Rating, review.Review),
	})
}

// ContactMessageReceived enqueues the admin notification and the submitter
// acknowledgment for a new contact message: exactly two emails.
func (n *notifier) ContactMessageReceived(ctx context.Context, msg models.ContactMessage) error {
	adminErr := n.enqueue(ctx, EmailTaskPayload{
		To:      n.cfg.AdminEmail,
		Subject: "New Contact Message",
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage:\n%s",
			msg.Name, msg.Email, msg.Phone, msg.Message),
	})

	ackErr := n.enqueue(ctx, EmailTaskPayload{
		To:      msg.Email,
		Subject: "We received your message",
		Body:    "Thank you for contacting Bakholokoe Game Reserve. We will reply shortly.",
	})

	if adminErr != nil {
		return adminErr
	}
	return ackErr
}
