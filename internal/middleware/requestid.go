package middleware

import (
	"time" // Request duration measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request ID generation
	"github.com/sirupsen/logrus" // Logging library
)

// Header and context key for request correlation
const (
	RequestIDHeader = "X-Request-ID" // Correlation header
	CtxRequestID    = "requestID"    // Context key for the request ID
)

// RequestIDMiddleware attaches a correlation ID to every request, honoring
// an inbound X-Request-ID, and logs one structured line per request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Reuse the caller's ID when given
		if id == "" {
			id = uuid.NewString() // Otherwise mint a fresh one
		}
		c.Set(CtxRequestID, id)              // Store the ID in context
		c.Header(RequestIDHeader, id)        // Echo the ID to the client
		start := time.Now()                  // Mark request start
		c.Next()                             // Run the rest of the chain
		logrus.WithFields(logrus.Fields{     // One line per request
			"request_id": id,                       // Correlation ID
			"method":     c.Request.Method,         // HTTP method
			"path":       c.Request.URL.Path,       // Request path
			"status":     c.Writer.Status(),        // Response status
			"duration":   time.Since(start).String(), // Handling time
		}).Info("Request handled")
	}
}
