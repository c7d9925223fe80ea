package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/auth"
)

const (
	// ContextKeyUserEmail holds the key for the session user's email in Gin context.
	ContextKeyUserEmail = "userEmail"
	// ContextKeyUserName holds the key for the session user's display name in Gin context.
	ContextKeyUserName = "userName"
)

// SessionMiddleware reads the session cookie and, when the token is valid,
// puts the authenticated identity into the Gin context. It never aborts:
// pages that work for anonymous visitors keep working.
func SessionMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookieName)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		claims, err := auth.ValidateSessionToken(tokenString, secretKey)
		if err != nil {
			// Expired or tampered cookie; treat as anonymous.
			c.Next()
			return
		}

		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserName, claims.Name)
		c.Next()
	}
}

// RequireUser gates a route on an authenticated session. Unauthenticated
// requests are redirected to the login page carrying the originating path as
// the continuation target, so completing login returns the visitor here.
// Assumes SessionMiddleware runs first.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionEmail(c); !ok {
			target := "/login?next=" + url.QueryEscape(c.Request.URL.Path)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionEmail returns the authenticated email from the context, if any.
func SessionEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextKeyUserEmail)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok && s != ""
}

// SessionName returns the session user's display name, or "" when anonymous.
func SessionName(c *gin.Context) string {
	name, exists := c.Get(ContextKeyUserName)
	if !exists {
		return ""
	}
	s, _ := name.(string)
	return s
}
