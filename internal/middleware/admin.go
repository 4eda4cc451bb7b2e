package middleware

import (
	"booking_system/internal/domain"  // Role constants
	"booking_system/internal/httperr" // Error taxonomy

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware checks the authenticated principal's role claim
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole) // Get role from context
		// Check if role claim exists and is admin
		if !exists || role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			e := httperr.Forbidden("ADMIN_REQUIRED", "admin required")
			c.AbortWithStatusJSON(e.Status, e.Body())
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
