package api

import (
	"net/http" // HTTP status codes
	"time"     // Health timestamp

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler reports service liveness
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",                            // Service status
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
			"message":   "appointment booking API",       // Service identity
		})
	}
}
