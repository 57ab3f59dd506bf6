package middleware

import (
	"net/http"
	"strings"

	"livestock_market/internal/model"
	"livestock_market/internal/repository"
	"livestock_market/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AuthUserKey is the gin context key holding the resolved *model.User.
	AuthUserKey = "authUser"
)

// Authenticate creates a middleware that resolves the bearer token to a
// current user record. The user is re-read from storage on every request, so
// role or status changes made after token issuance take effect immediately;
// the token itself carries no authority beyond identity and expiry.
func Authenticate(jwtUtil *utils.JWTUtil, userRepo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			// Expired vs forged is logged for diagnostics but not surfaced.
			logger.Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Error("user lookup failed during authentication", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user == nil {
			// Deleted between issuance and use.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the resolved user set by Authenticate.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
