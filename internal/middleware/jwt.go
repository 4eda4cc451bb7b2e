package middleware

import (
	"strings" // String manipulation

	"booking_system/internal/httperr" // Error taxonomy
	"booking_system/internal/utils"   // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by the middleware chain
const (
	CtxUserID = "userID" // Authenticated user ID
	CtxEmail  = "email"  // Authenticated user email
	CtxRole   = "role"   // Authenticated user role
)

// JWTAuthMiddleware validates bearer tokens and attaches the decoded claims
// to the request context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			e := httperr.Auth("UNAUTHORIZED", "unauthorized")
			c.AbortWithStatusJSON(e.Status, e.Body()) // Abort with unauthorized status
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// Signature failure and expiry are reported identically
			e := httperr.Auth("INVALID_TOKEN", "invalid token")
			c.AbortWithStatusJSON(e.Status, e.Body()) // Abort with unauthorized status
			return
		}
		c.Set(CtxUserID, claims.UserID) // Store user ID in context
		c.Set(CtxEmail, claims.Email)   // Store email in context
		c.Set(CtxRole, claims.Role)     // Store role in context
		c.Next()                        // Proceed to the next handler
	}
}
