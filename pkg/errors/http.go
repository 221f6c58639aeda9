package errors

import "fmt"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Common HTTP errors.
var (
	ErrInternalServerError = NewHTTPError(500, "Internal Server Error")
	ErrServiceUnavailable  = NewHTTPError(503, "Service Unavailable")
	ErrTooManyRequests     = NewHTTPError(429, "Too Many Requests")
)
