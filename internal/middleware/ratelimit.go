package middleware

import (
	"net/http" // HTTP status codes
	"time"     // Window durations

	"booking_system/internal/httperr" // Error taxonomy
	"booking_system/internal/utils"   // Redis counter helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// RateLimitMiddleware enforces a fixed-window request ceiling per client IP,
// backed by a redis counter. When redis is unreachable the request is let
// through rather than failing the whole API on a limiter outage.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP() // Counter key for this client
		count, err := utils.CountRequest(c.Request.Context(), rdb, key, window)
		if err != nil {
			// Limiter failure must not take down the API
			logrus.WithField("error", err.Error()).Warn("Rate limiter unavailable")
			c.Next()
			return
		}
		// Reject once the client exceeds the window ceiling
		if count > int64(limit) {
			e := httperr.New(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
			c.AbortWithStatusJSON(e.Status, e.Body())
			return
		}
		c.Next() // Proceed to the next handler
	}
}
