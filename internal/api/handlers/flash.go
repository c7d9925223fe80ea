package handlers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// FlashMessage is a one-shot user-facing notice surviving exactly one redirect.
type FlashMessage struct {
	Level   string `json:"level"` // "success" or "error"
	Message string `json:"message"`
}

// SetFlash stores a flash message in a short-lived cookie.
func SetFlash(c *gin.Context, level, message string) {
	data, err := json.Marshal(FlashMessage{Level: level, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	c.SetCookie(flashCookieName, encoded, 60, "/", "", false, true)
}

// TakeFlash reads and clears the flash cookie.
func TakeFlash(c *gin.Context) (FlashMessage, bool) {
	encoded, err := c.Cookie(flashCookieName)
	if err != nil || encoded == "" {
		return FlashMessage{}, false
	}

	// Clear regardless of whether the payload decodes.
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return FlashMessage{}, false
	}
	var msg FlashMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return FlashMessage{}, false
	}
	return msg, true
}
