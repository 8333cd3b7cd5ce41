package response

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "ams_flash"
	flashMaxAge     = 60
)

// Flash is a one-shot status message carried across a redirect, consumed
// by the next dashboard load.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func SetFlash(c *gin.Context, level, message string) {
	value := url.QueryEscape(level + "|" + message)
	c.SetCookie(flashCookieName, value, flashMaxAge, "/", "", false, true)
}

// TakeFlash reads and clears the flash cookie. Returns nil when none is
// set.
func TakeFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(decoded, "|")
	if !found {
		return &Flash{Level: "info", Message: decoded}
	}
	return &Flash{Level: level, Message: message}
}
