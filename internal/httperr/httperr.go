// Package httperr defines the error taxonomy surfaced by the API: every
// failure carries an HTTP status, a stable machine-readable code and a
// human message, rendered uniformly by the api package.
package httperr

import "net/http"

// Error represents a request failure with an associated HTTP status code.
type Error struct {
	Status  int    // HTTP status code
	Code    string // Stable machine-readable code
	Message string // Human-readable message
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status, code and message.
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Body returns the uniform response envelope for the error. Every failure
// the API emits goes through this single mapping.
func (e *Error) Body() map[string]any {
	return map[string]any{"error": map[string]any{"code": e.Code, "message": e.Message}}
}

// Helpers for the common error kinds
func Validation(code, message string) *Error { return New(http.StatusBadRequest, code, message) }
func Auth(code, message string) *Error       { return New(http.StatusUnauthorized, code, message) }
func Forbidden(code, message string) *Error  { return New(http.StatusForbidden, code, message) }
func NotFound(code, message string) *Error   { return New(http.StatusNotFound, code, message) }
func Conflict(code, message string) *Error   { return New(http.StatusConflict, code, message) }
func Internal(code, message string) *Error   { return New(http.StatusInternalServerError, code, message) }
