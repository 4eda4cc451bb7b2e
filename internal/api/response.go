package api

import (
	"booking_system/internal/httperr"    // Error taxonomy
	"booking_system/internal/middleware" // Context keys

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Fail writes the uniform error envelope for e
func Fail(c *gin.Context, e *httperr.Error) {
	c.JSON(e.Status, e.Body())
}

// FailInternal logs the underlying failure with request context and returns
// a generic envelope, so store detail never reaches the client
func FailInternal(c *gin.Context, code string, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.CtxRequestID), // Correlation ID
		"path":       c.Request.URL.Path,       // Failing route
		"error":      err.Error(),              // Underlying error detail
	}).Error("Internal error") // Log internal failure
	Fail(c, httperr.Internal(code, "internal error"))
}
