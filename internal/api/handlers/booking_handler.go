package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/services"
	"github.com/kchitera56/bakholokoe-website/internal/tasks"
)

// BookingHandler handles the three booking forms (hunt, accommodation,
// purified water) and the user's booking list. All routes here are gated by
// RequireUser.
type BookingHandler struct {
	bookingService services.IBookingService
	notifier       tasks.INotifier
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService services.IBookingService, notifier tasks.INotifier) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		notifier:       notifier,
	}
}

// ShowHunt handles GET /book-hunt
func (h *BookingHandler) ShowHunt(c *gin.Context) {
	render(c, "book_hunt.html", nil)
}

// SubmitHunt handles POST /book-hunt
func (h *BookingHandler) SubmitHunt(c *gin.Context) {
	fields, err := requireFields(c, "first_name", "contact", "hunt_date")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/book-hunt")
		return
	}

	email, _ := middleware.SessionEmail(c)
	h.persistAndNotify(c, "/book-hunt", models.Booking{
		Category:  models.CategoryHunt,
		UserEmail: email,
		FirstName: fields["first_name"],
		Contact:   fields["contact"],
		HuntDate:  fields["hunt_date"],
	})
}

// ShowAccommodation handles GET /accommodation
func (h *BookingHandler) ShowAccommodation(c *gin.Context) {
	render(c, "accommodation.html", nil)
}

// SubmitAccommodation handles POST /accommodation
func (h *BookingHandler) SubmitAccommodation(c *gin.Context) {
	fields, err := requireFields(c, "first_name", "contact", "checkin_date")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/accommodation")
		return
	}

	email, _ := middleware.SessionEmail(c)
	h.persistAndNotify(c, "/accommodation", models.Booking{
		Category:    models.CategoryAccommodation,
		UserEmail:   email,
		FirstName:   fields["first_name"],
		Contact:     fields["contact"],
		CheckinDate: fields["checkin_date"],
	})
}

// ShowWater handles GET /purified-water
func (h *BookingHandler) ShowWater(c *gin.Context) {
	render(c, "water.html", nil)
}

// SubmitWater handles POST /purified-water
func (h *BookingHandler) SubmitWater(c *gin.Context) {
	fields, err := requireFields(c, "first_name", "contact", "product_quantity", "location")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/purified-water")
		return
	}

	email, _ := middleware.SessionEmail(c)
	h.persistAndNotify(c, "/purified-water", models.Booking{
		Category:        models.CategoryWater,
		UserEmail:       email,
		FirstName:       fields["first_name"],
		Contact:         fields["contact"],
		ProductQuantity: fields["product_quantity"],
		Location:        fields["location"],
	})
}

// MyBookings handles GET /my-bookings, listing the session user's bookings
// across all categories, newest first.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	email, _ := middleware.SessionEmail(c)

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), email)
	if err != nil {
		log.Printf("Failed to list bookings for %s: %v", email, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		bookings = nil
	}
	render(c, "my_bookings.html", gin.H{"Bookings": bookings})
}

func (h *BookingHandler) persistAndNotify(c *gin.Context, formPath string, booking models.Booking) {
	ctx := c.Request.Context()

	created, err := h.bookingService.CreateBooking(ctx, booking)
	if err != nil {
		log.Printf("Failed to save %s booking for %s: %v", booking.Category, booking.UserEmail, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, formPath)
		return
	}

	if err := h.notifier.BookingCreated(ctx, *created); err != nil {
		// Booking is already persisted; notification failure is logged only.
		log.Printf("Failed to enqueue %s booking notification for %s: %v", booking.Category, booking.UserEmail, err)
	}

	SetFlash(c, "success", "Your booking request has been sent!")
	c.Redirect(http.StatusFound, formPath)
}
