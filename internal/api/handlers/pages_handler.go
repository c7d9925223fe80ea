package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kchitera56/bakholokoe-website/internal/storage"
)

// PagesHandler serves the static content pages.
type PagesHandler struct {
	gallery storage.IGalleryStorage
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(gallery storage.IGalleryStorage) *PagesHandler {
	return &PagesHandler{gallery: gallery}
}

// Home handles GET /
func (h *PagesHandler) Home(c *gin.Context) {
	render(c, "index.html", nil)
}

// About handles GET /about
func (h *PagesHandler) About(c *gin.Context) {
	render(c, "about.html", nil)
}

// Gallery handles GET /gallery. A storage failure degrades to an empty
// gallery rather than an error page.
func (h *PagesHandler) Gallery(c *gin.Context) {
	images, err := h.gallery.ListImageURLs(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list gallery images: %v", err)
		images = nil
	}
	render(c, "gallery.html", gin.H{"Images": images})
}

// Map handles GET /map
func (h *PagesHandler) Map(c *gin.Context) {
	render(c, "map.html", nil)
}

// Kids handles GET /kids
func (h *PagesHandler) Kids(c *gin.Context) {
	render(c, "kids.html", nil)
}
