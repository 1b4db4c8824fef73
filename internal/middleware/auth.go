package middleware

import (
	"net/http"
	"strings"

	"talentscout_backend/internal/auth"
	"talentscout_backend/internal/logger"
	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to an active user record.
// A bad header, bad token and unknown subject all reject identically with
// 401; only a valid token for a disabled account gets 400.
func AuthMiddleware(tokens *auth.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header missing or invalid")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := tokens.Verify(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		user, err := users.FindByUsername(dbFromContext(c), username)
		if err != nil {
			// Same rejection whether the token was stale or the user is gone.
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}

		c.Set(string(contextkeys.CurrentUserKey), user)
		c.Request = c.Request.WithContext(logger.WithUsername(c.Request.Context(), user.Username))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(string(contextkeys.CurrentUserKey))
	if !exists {
		return nil, false
	}

	user, ok := val.(*models.User)
	return user, ok
}
