package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
	"github.com/kchitera56/bakholokoe-website/internal/services"
	"github.com/kchitera56/bakholokoe-website/internal/tasks"
)

// ReviewHandler handles the reviews page. Submitting requires a session and
// each user may leave at most one review.
type ReviewHandler struct {
	userService   services.IUserService
	reviewService services.IReviewService
	notifier      tasks.INotifier
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(userService services.IUserService, reviewService services.IReviewService, notifier tasks.INotifier) *ReviewHandler {
	return &ReviewHandler{
		userService:   userService,
		reviewService: reviewService,
		notifier:      notifier,
	}
}

// Show handles GET /reviews.
func (h *ReviewHandler) Show(c *gin.Context) {
	render(c, "reviews.html", nil)
}

// Submit handles POST /reviews. RequireUser runs before this.
func (h *ReviewHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	email, _ := middleware.SessionEmail(c)

	// One review per user. The gate runs before field validation: a repeat
	// submitter sees the duplicate notice even on an incomplete form.
	already, err := h.reviewService.HasReviewBy(ctx, email)
	if err != nil {
		log.Printf("Failed to check for existing review by %s: %v", email, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}
	if already {
		SetFlash(c, "error", "You have already submitted a review.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	fields, err := requireFields(c, "review", "rating")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	// Display name comes from the user record, not the session cookie, so a
	// stale cookie can't mislabel the review.
	user, err := h.userService.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Failed to load user %s for review: %v", email, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	review, err := h.reviewService.CreateReview(ctx, user.Email, user.Name, fields["review"], fields["rating"])
	if err != nil {
		if errors.Is(err, services.ErrDuplicateReview) {
			SetFlash(c, "error", "You have already submitted a review.")
		} else {
			log.Printf("Failed to save review from %s: %v", email, err)
			SetFlash(c, "error", "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/reviews")
		return
	}

	if err := h.notifier.ReviewCreated(ctx, *review); err != nil {
		log.Printf("Failed to enqueue review notification for %s: %v", email, err)
	}

	SetFlash(c, "success", "Review submitted!")
	c.Redirect(http.StatusFound, "/reviews")
}
