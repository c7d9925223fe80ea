package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/api/middleware"
)

// render executes an HTML template with the flash message and session identity
// merged into the template data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if flash, ok := TakeFlash(c); ok {
		data["Flash"] = flash
	}
	if email, ok := middleware.SessionEmail(c); ok {
		data["UserEmail"] = email
		data["UserName"] = middleware.SessionName(c)
	}
	c.HTML(http.StatusOK, name, data)
}
