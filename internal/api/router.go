package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kchitera56/bakholokoe-website/internal/api/handlers"
	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
	"github.com/kchitera56/bakholokoe-website/internal/config"
	"github.com/kchitera56/bakholokoe-website/internal/services"
	"github.com/kchitera56/bakholokoe-website/internal/storage"
	"github.com/kchitera56/bakholokoe-website/internal/tasks"
)

// SetupRouter configures and returns the site's Gin engine.
func SetupRouter(cfg *config.Config, db *mongo.Database, notifier tasks.INotifier, gallery storage.IGalleryStorage) *gin.Engine {
	// Initialize services needed by the handlers here
	userService := services.NewUserService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	contactService := services.NewContactService(db)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	// Session identity is resolved for every request; individual routes decide
	// whether they require it.
	r.Use(middleware.SessionMiddleware(cfg.SecretKey))

	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)
	limited := rateLimiter.Limit()

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(gallery)
	authHandler := handlers.NewAuthHandler(cfg, userService)
	contactHandler := handlers.NewContactHandler(userService, contactService, notifier)
	reviewHandler := handlers.NewReviewHandler(userService, reviewService, notifier)
	bookingHandler := handlers.NewBookingHandler(bookingService, notifier)

	// Public pages
	r.GET("/", pagesHandler.Home)
	r.GET("/about", pagesHandler.About)
	r.GET("/gallery", pagesHandler.Gallery)
	r.GET("/map", pagesHandler.Map)
	r.GET("/kids", pagesHandler.Kids)

	// Authentication
	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", limited, authHandler.Signup)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", limited, authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Contact is open to anonymous visitors
	r.GET("/contact", contactHandler.Show)
	r.POST("/contact", limited, contactHandler.Submit)

	// Reviews: page is public, submitting requires a session
	r.GET("/reviews", reviewHandler.Show)
	r.POST("/reviews", middleware.RequireUser(), limited, reviewHandler.Submit)

	// Booking forms require a session for both viewing and submitting
	authRequired := r.Group("/", middleware.RequireUser())
	{
		authRequired.GET("/book-hunt", bookingHandler.ShowHunt)
		authRequired.POST("/book-hunt", limited, bookingHandler.SubmitHunt)
		authRequired.GET("/accommodation", bookingHandler.ShowAccommodation)
		authRequired.POST("/accommodation", limited, bookingHandler.SubmitAccommodation)
		authRequired.GET("/purified-water", bookingHandler.ShowWater)
		authRequired.POST("/purified-water", limited, bookingHandler.SubmitWater)
		authRequired.GET("/my-bookings", bookingHandler.MyBookings)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
