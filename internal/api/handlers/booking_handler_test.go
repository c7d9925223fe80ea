package handlers_test

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kchitera56/bakholokoe-website/internal/api/handlers"
	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
	"github.com/kchitera56/bakholokoe-website/internal/models"
	"github.com/kchitera56/bakholokoe-website/internal/utils"
)

// bookingRouter wires the booking routes the way the real router does:
// session middleware first, then the login gate.
func bookingRouter(handler *handlers.BookingHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SessionMiddleware(testSecret))
	gated := r.Group("/", middleware.RequireUser())
	gated.GET("/book-hunt", handler.ShowHunt)
	gated.POST("/book-hunt", handler.SubmitHunt)
	gated.GET("/accommodation", handler.ShowAccommodation)
	gated.POST("/accommodation", handler.SubmitAccommodation)
	gated.GET("/purified-water", handler.ShowWater)
	gated.POST("/purified-water", handler.SubmitWater)
	gated.GET("/my-bookings", handler.MyBookings)
	return r
}

func TestBookingHandler_RequiresLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	w := postForm(r, "/book-hunt", url.Values{
		"first_name": {"Jane"},
		"contact":    {"555-0101"},
		"hunt_date":  {"2025-06-01"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fbook-hunt", w.Header().Get("Location"))
	mockBookingSvc.AssertNotCalled(t, "CreateBooking")
	mockNotifier.AssertNotCalled(t, "BookingCreated")
}

func TestBookingHandler_SubmitHunt_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	submitted := models.Booking{
		Category:  models.CategoryHunt,
		UserEmail: "jane@example.com",
		FirstName: "Jane",
		Contact:   "555-0101",
		HuntDate:  "2025-06-01",
	}
	created := submitted
	created.ID = utils.NewSixID()
	mockBookingSvc.On("CreateBooking", mock.Anything, submitted).Return(&created, nil)
	mockNotifier.On("BookingCreated", mock.Anything, created).Return(nil)

	w := postForm(r, "/book-hunt", url.Values{
		"first_name": {"Jane"},
		"contact":    {"555-0101"},
		"hunt_date":  {"2025-06-01"},
	}, sessionCookie(t, "jane@example.com", "Jane"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/book-hunt", w.Header().Get("Location"))
	flash, ok := flashFrom(t, w)
	assert.True(t, ok)
	assert.Equal(t, "success", flash.Level)
	assert.Equal(t, "Your booking request has been sent!", flash.Message)
	mockBookingSvc.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingHandler_SubmitHunt_MissingField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	w := postForm(r, "/book-hunt", url.Values{
		"first_name": {"Jane"},
		"contact":    {"555-0101"},
		// hunt_date absent
	}, sessionCookie(t, "jane@example.com", "Jane"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/book-hunt", w.Header().Get("Location"))
	flash, ok := flashFrom(t, w)
	assert.True(t, ok)
	assert.Equal(t, "error", flash.Level)
	assert.Contains(t, flash.Message, "hunt_date")
	mockBookingSvc.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_SubmitHunt_BlankFieldRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	w := postForm(r, "/book-hunt", url.Values{
		"first_name": {"   "},
		"contact":    {"555-0101"},
		"hunt_date":  {"2025-06-01"},
	}, sessionCookie(t, "jane@example.com", "Jane"))

	assert.Equal(t, http.StatusFound, w.Code)
	flash, ok := flashFrom(t, w)
	assert.True(t, ok)
	assert.Contains(t, flash.Message, "first_name")
	mockBookingSvc.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_SubmitAccommodation_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	submitted := models.Booking{
		Category:    models.CategoryAccommodation,
		UserEmail:   "jane@example.com",
		FirstName:   "Jane",
		Contact:     "555-0101",
		CheckinDate: "2025-07-15",
	}
	created := submitted
	created.ID = utils.NewSixID()
	mockBookingSvc.On("CreateBooking", mock.Anything, submitted).Return(&created, nil)
	mockNotifier.On("BookingCreated", mock.Anything, created).Return(nil)

	w := postForm(r, "/accommodation", url.Values{
		"first_name":   {"Jane"},
		"contact":      {"555-0101"},
		"checkin_date": {"2025-07-15"},
	}, sessionCookie(t, "jane@example.com", "Jane"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accommodation", w.Header().Get("Location"))
	mockBookingSvc.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingHandler_SubmitWater_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	submitted := models.Booking{
		Category:        models.CategoryWater,
		UserEmail:       "jane@example.com",
		FirstName:       "Jane",
		Contact:         "555-0101",
		ProductQuantity: "12",
		Location:        "Maseru",
	}
	created := submitted
	created.ID = utils.NewSixID()
	mockBookingSvc.On("CreateBooking", mock.Anything, submitted).Return(&created, nil)
	mockNotifier.On("BookingCreated", mock.Anything, created).Return(nil)

	w := postForm(r, "/purified-water", url.Values{
		"first_name":       {"Jane"},
		"contact":          {"555-0101"},
		"product_quantity": {"12"},
		"location":         {"Maseru"},
	}, sessionCookie(t, "jane@example.com", "Jane"))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/purified-water", w.Header().Get("Location"))
	mockBookingSvc.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingHandler_NotifyFailureStillSucceeds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	r := bookingRouter(handlers.NewBookingHandler(mockBookingSvc, mockNotifier))

	created := models.Booking{
		ID:        utils.NewSixID(),
		Category:  models.CategoryHunt,
		UserEmail: "jane@example.com",
		FirstName: "Jane",
		Contact:   "555-0101",
		HuntDate:  "2025-06-01",
	}
	mockBookingSvc.On("CreateBooking", mock.Anything, mock.AnythingOfType("models.Booking")).Return(&created, nil)
	mockNotifier.On("BookingCreated", mock.Anything, created).Return(errors.New("broker down"))

	w := postForm(r, "/book-hunt", url.Values{
		"first_name": {"Jane"},
		"contact":    {"555-0101"},
		"hunt_date":  {"2025-06-01"},
	}, sessionCookie(t, "jane@example.com", "Jane"))

	// The booking is durable, so the visitor still sees success.
	assert.Equal(t, http.StatusFound, w.Code)
	flash, ok := flashFrom(t, w)
	assert.True(t, ok)
	assert.Equal(t, "success", flash.Level)
	mockNotifier.AssertExpectations(t)
}

func TestBookingHandler_MyBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockBookingSvc := new(MockBookingService)
	mockNotifier := new(MockNotifier)
	handler := handlers.NewBookingHandler(mockBookingSvc, mockNotifier)
	r := bookingRouter(handler)
	r.SetHTMLTemplate(template.Must(template.New("my_bookings.html").Parse(
		`{{range .Bookings}}{{.Category}}:{{.FirstName}};{{end}}`)))

	mockBookingSvc.On("ListByUser", mock.Anything, "jane@example.com").Return([]models.Booking{
		{ID: utils.NewSixID(), Category: models.CategoryWater, UserEmail: "jane@example.com", FirstName: "Jane"},
		{ID: utils.NewSixID(), Category: models.CategoryHunt, UserEmail: "jane@example.com", FirstName: "Jane"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/my-bookings", nil)
	req.AddCookie(sessionCookie(t, "jane@example.com", "Jane"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "water:Jane;hunt:Jane;", w.Body.String())
	mockBookingSvc.AssertExpectations(t)
}
