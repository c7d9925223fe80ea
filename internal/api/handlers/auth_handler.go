package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/auth"
	"github.com/kchitera56/bakholokoe-website/internal/config"
	"github.com/kchitera56/bakholokoe-website/internal/services"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	cfg         *config.Config
	userService services.IUserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, userService services.IUserService) *AuthHandler {
	return &AuthHandler{
		cfg:         cfg,
		userService: userService,
	}
}

// ShowSignup handles GET /signup
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	render(c, "signup.html", nil)
}

// Signup handles POST /signup. Success does not log the user in; they are
// sent to the login page.
func (h *AuthHandler) Signup(c *gin.Context) {
	fields, err := requireFields(c, "name", "email", "password")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	_, err = h.userService.Signup(c.Request.Context(), fields["name"], fields["email"], fields["password"])
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			SetFlash(c, "error", "User already exists")
		} else {
			log.Printf("Signup failed for %s: %v", fields["email"], err)
			SetFlash(c, "error", "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, "/signup")
		return
	}

	SetFlash(c, "success", "Signup successful!")
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin handles GET /login. The optional next query parameter is threaded
// through the form so a gated page is returned to after login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, "login.html", gin.H{"Next": c.Query("next")})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	next := c.Query("next")

	fields, err := requireFields(c, "email", "password")
	if err != nil {
		SetFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, loginPath(next))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), fields["email"], fields["password"])
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			SetFlash(c, "error", "Incorrect email or password")
		} else {
			log.Printf("Login failed for %s: %v", fields["email"], err)
			SetFlash(c, "error", "Something went wrong. Please try again.")
		}
		c.Redirect(http.StatusFound, loginPath(next))
		return
	}

	token, err := auth.NewSessionToken(user.Email, user.Name, h.cfg.SecretKey, h.cfg.SessionTTL)
	if err != nil {
		log.Printf("Failed to mint session token for %s: %v", user.Email, err)
		SetFlash(c, "error", "Something went wrong. Please try again.")
		c.Redirect(http.StatusFound, loginPath(next))
		return
	}
	c.SetCookie(auth.SessionCookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)

	SetFlash(c, "success", "Login successful!")
	c.Redirect(http.StatusFound, safeNext(next))
}

// Logout handles GET /logout. Clearing an absent session is fine; logout is
// idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	SetFlash(c, "success", "Logged out successfully")
	c.Redirect(http.StatusFound, "/")
}

// loginPath rebuilds the login URL keeping the continuation target intact.
func loginPath(next string) string {
	if next == "" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// safeNext restricts the post-login redirect to local paths so the
// continuation token cannot send users off-site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
