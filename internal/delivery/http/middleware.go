package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gogreen/tree-donation-service/internal/domain"
	useruc "github.com/gogreen/tree-donation-service/internal/usecase/user"
)

const userContextKey = "auth.user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// RequireAuth resolves the bearer token to a user or aborts with 401.
func RequireAuth(users useruc.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.Authenticate(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidSession.Message})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and stays
// silent otherwise; public pages use it to personalize responses.
func OptionalAuth(users useruc.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if user, err := users.Authenticate(token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

// RequireAdminKey gates operator endpoints on the X-Admin-Key header.
func RequireAdminKey(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access is not configured"})
			return
		}
		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid admin key"})
			return
		}
		c.Next()
	}
}
