package middleware

import (
	"net/http"

	"livestock_market/internal/model"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a middleware that checks the resolved user holds one of
// the allowed roles. Membership is exact-match: there is no role hierarchy and
// an admin does not pass a farmer-only gate.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not resolved, ensure auth middleware runs first"})
			return
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Required role missing."})
	}
}

// FarmerOnly restricts an endpoint to farmers
func FarmerOnly() gin.HandlerFunc {
	return RequireRole(model.RoleFarmer)
}

// BuyerOnly restricts an endpoint to buyers
func BuyerOnly() gin.HandlerFunc {
	return RequireRole(model.RoleBuyer)
}

// VetOnly restricts an endpoint to veterinarians
func VetOnly() gin.HandlerFunc {
	return RequireRole(model.RoleVet)
}

// AdminOnly restricts an endpoint to admins
func AdminOnly() gin.HandlerFunc {
	return RequireRole(model.RoleAdmin)
}
