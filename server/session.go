package server

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	sessionKey    = "session"

	sessionMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware scopes a cart to one browsing session via a cookie.
// A new id is issued on the first request without one.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionId(c *gin.Context) string {
	return c.GetString(sessionKey)
}
