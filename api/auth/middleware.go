package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/hellenika/database"
	"github.com/hellenika/hellenika/words"
)

const userContextKey = "user"

// RequireAuth validates the bearer token and stores the authenticated user in
// the request context.
func (p *Provider) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}

		user, err := p.userFromToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "inactive user"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin aborts the request unless the authenticated user is an admin.
// It must run after RequireAuth.
func (p *Provider) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet(userContextKey).(*database.User)
		if !ok || user.Role != database.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) *database.User {
	return c.MustGet(userContextKey).(*database.User)
}

// CallerFrom builds the workflow caller for the authenticated user.
func CallerFrom(c *gin.Context) words.Caller {
	user := CurrentUser(c)
	return words.Caller{ID: user.ID, Role: user.Role}
}
