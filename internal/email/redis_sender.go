package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kchitera56/bakholokoe-website/internal/config"
)

// RedisSender implements the Sender interface by storing emails in Redis
// instead of delivering them. Used when MOCK_SERVICES is enabled so tests can
// assert on the notifications a submission produced.
type RedisSender struct {
	client *redis.Client
	cfg    *config.Config
}

// NewRedisSender creates a new RedisSender.
func NewRedisSender(client *redis.Client, cfg *config.Config) Sender {
	return &RedisSender{
		client: client,
		cfg:    cfg,
	}
}

// notificationKind maps a subject line to the submission workflow that produced it,
// for key differentiation. Heuristic, same as the subjects composed in tasks.
func notificationKind(subject string) string {
	switch {
	case strings.Contains(subject, "Hunt Booking"):
		return "booking_hunt"
	case strings.Contains(subject, "Accommodation Booking"):
		return "booking_accommodation"
	case strings.Contains(subject, "Water Order"):
		return "booking_water"
	case strings.Contains(subject, "Review"):
		return "review"
	case strings.Contains(subject, "Contact Message"):
		return "contact_admin"
	case strings.Contains(subject, "received your message"):
		return "contact_ack"
	default:
		return "unknown"
	}
}

// Send stores a representation of the email in Redis instead of sending it.
func (s *RedisSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	// Use the first recipient for the mock key.
	primaryTo := ""
	if len(to) > 0 {
		primaryTo = to[0]
	}

	kind := notificationKind(subject)

	emailData := map[string]interface{}{
		"to":      strings.Join(to, ", "),
		"from":    s.cfg.SmtpFromAddress,
		"subject": subject,
		"body":    string(rawMessage),
		"sent_at": time.Now().UTC().Format(time.RFC3339Nano),
		"kind":    kind,
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("failed to marshal email data: %w", err)
	}

	key := fmt.Sprintf("mockemail:%s:%s", primaryTo, kind)
	ttl := 5 * time.Minute

	err = s.client.Set(ctx, key, jsonData, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store email in Redis key '%s': %w", key, err)
	}

	log.Printf("Mock email stored in Redis key '%s' (TTL: %v, To: %s, Subject: %s)", key, ttl, strings.Join(to, ", "), subject)
	return nil
}
