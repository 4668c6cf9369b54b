package flash

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// One-shot flash messages carried in a short-lived cookie. Set on the
// redirect response, consumed and cleared by the next page read.

const cookieName = "flash"

// Set stores a message to be shown on the next request.
func Set(c *gin.Context, message string) {
	c.SetCookie(cookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

// Take returns the pending message, if any, and clears it.
func Take(c *gin.Context) string {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
