package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the session ID. The ID only keys
// the in-memory result store; it authenticates nothing.
const SessionCookie = "medscribe_session"

const sessionContextKey = "session_id"

// Session assigns each browser a session ID on first API touch. The
// cookie lives for the idle window the session manager prunes at, so a
// returning browser with an expired store just gets a fresh one.
func Session(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(SessionCookie, id, maxAgeSeconds, "/", "", false, true)
		}

		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the session ID assigned by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
