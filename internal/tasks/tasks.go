package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/kchitera56/bakholokoe-website/internal/config"
	"github.com/kchitera56/bakholokoe-website/internal/email"
)

// TypeEmailDeliver is the task type for notification email delivery.
const TypeEmailDeliver = "email:deliver"

// NewClient creates an asynq client on the same Redis the cache uses.
func NewClient(rdb *redis.Client) *asynq.Client {
	clientOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}
	return asynq.NewClient(clientOpt)
}

// EmailTaskPayload is the payload of a TypeEmailDeliver task.
type EmailTaskPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TaskProcessor handles the processing of background tasks.
// It holds the dependencies needed by task handlers.
type TaskProcessor struct {
	cfg         *config.Config
	emailSender email.Sender
}

// NewTaskProcessor creates a new TaskProcessor.
func NewTaskProcessor(cfg *config.Config, emailSender email.Sender) *TaskProcessor {
	return &TaskProcessor{
		cfg:         cfg,
		emailSender: emailSender,
	}
}

// NewServer configures an asynq server for the background worker.
func NewServer(rdb *redis.Client) *asynq.Server {
	serverOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}

	return asynq.NewServer(
		serverOpt,
		asynq.Config{
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq Error] Task Type: %s, Payload: %s, Error: %v", task.Type(), string(task.Payload()), err)
			}),
		},
	)
}

// NewMux registers the worker's task handlers.
func NewMux(processor *TaskProcessor) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailDeliver, processor.HandleEmailDeliverTask)
	return mux
}

// HandleEmailDeliverTask renders and sends one notification email.
// Returning a non-SkipRetry error lets asynq retry the delivery.
func (p *TaskProcessor) HandleEmailDeliverTask(ctx context.Context, t *asynq.Task) error {
	var payload EmailTaskPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal email task payload: %v: %w", err, asynq.SkipRetry)
	}

	rawMessage := composeMessage(p.cfg, payload.To, payload.Subject, payload.Body)

	// Bound the SMTP exchange so a hung relay doesn't pin the worker.
	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := p.emailSender.Send(sendCtx, []string{payload.To}, payload.Subject, rawMessage); err != nil {
		return fmt.Errorf("failed to deliver email to %s: %w", payload.To, err)
	}
	return nil
}

// composeMessage builds the full RFC 2822 message with headers and body.
func composeMessage(cfg *config.Config, to, subject, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"Date: %s\r\n"+
			"Message-ID: <%s@%s>\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"utf-8\"\r\n"+
			"\r\n",
		cfg.SmtpFromName, cfg.SmtpFromAddress,
		to,
		subject,
		time.Now().Format(time.RFC1123Z),
		uuid.NewString(), cfg.SmtpHost,
	)
	return []byte(headers + body)
}
