package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alexw14/orange-box/models"
	"github.com/alexw14/orange-box/session"
)

// SessionCookie carries the session token between requests.
const SessionCookie = "orangebox_auth"

// Auth resolves the request's session token to a user and stores it in the
// context. Requests without a valid session are rejected with 401.
func Auth(db *gorm.DB, sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Validate(db, tokenFromRequest(c))
		if err != nil {
			if errors.Is(err, session.ErrUnauthenticated) {
				c.JSON(http.StatusUnauthorized, gin.H{"isAuth": false, "error": true})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate session"})
			}
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// AdminOnly rejects authenticated users without the administrator role.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to do that"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user Auth stored in the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// tokenFromRequest prefers the session cookie and falls back to a bearer
// Authorization header for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
