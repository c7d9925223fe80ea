package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
	"github.com/kchitera56/bakholokoe-website/internal/services"
	"github.com/kchitera56/bakholokoe-website/internal/tasks"
)

// ContactHandler handles the contact form. It is the one workflow open to
// anonymous visitors: a logged-in submitter is identified from the session,
// an anonymous one supplies name, email and phone on the form.
type ContactHandler struct {
	userService    services.IUserService
	contactService services.IContactService
	notifier       tasks.INotifier
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(userService services.IUserService, contactService services.IContactService, notifier tasks.INotifier) *ContactHandler {
	return &ContactHandler{
		userService:    userService,
		contactService: contactService,
		notifier:       notifier,
	}
}

// Show handles GET /contact, rendering the form plus the message list,
// newest first.
func (h *ContactHandler) Show(c *gin.Context) {
	messages, err := h.contactService.ListMessages(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list contact messages: %v", err)
		messages = nil
	}
	render(c, "contact.html", gin.H{"Messages": messages})
}

// Submit handles POST /contact. Exactly one record is written and two emails
// enqueued (admin notification, submitter acknowledgment). The record is
// durable regardless of notification outcome.
func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var name, email, phone string

	if sessionEmail, ok := middleware.SessionEmail(c); ok {
		user, err := h.userService.FindByEmail(ctx, sessionEmail)
		if err != nil {
			log.Printf("Failed to load user %s for contact form: %v", sessionEmail, err)
			SetFlash(c, "error", "Something went wrong. Please try again.")
			c.Redirect(http.StatusFound, "/contact")
			return
		}
		name = user.Name
		email = user.Email
		phone = ""

		fields, err := requireFields(c, "message")
		if err != nil {
			SetFlash(c, "error", err.Error())
			c.Redirect(http.StatusFound, "/contact")
			return
		}
		h.persistAndNotify(c, name, email, phone, fields["message"])
		return
	}

	fields, err := requireFields(c, "first_name", "email", "message")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/contact")
		return
	}
	name = fields["first_name"]
	email = fields["email"]
	phone = c.PostForm("phone") // optional for anonymous submitters

	h.persistAndNotify(c, name, email, phone, fields["message"])
}

func (h *ContactHandler) persistAndNotify(c *gin.Context, name, email, phone, message string) {
	ctx := c.Request.Context()

	msg, err := h.contactService.CreateMessage(ctx, name, email, phone, message)
	if err != nil {
		log.Printf("Failed to save contact message from %s: %v", email, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/contact")
		return
	}

	if err := h.notifier.ContactMessageReceived(ctx, *msg); err != nil {
		// Message is already persisted; notification failure is not the submitter's problem.
		log.Printf("Failed to enqueue contact notifications for %s: %v", email, err)
	}

	SetFlash(c, "success", "Your message has been sent!")
	c.Redirect(http.StatusFound, "/contact")
}
