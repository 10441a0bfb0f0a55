package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code and a user-facing message.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
// The business error code defaults to the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// WithCode overrides the business error code.
func (e *HTTPError) WithCode(code int) *HTTPError {
	return &HTTPError{
		StatusCode: e.StatusCode,
		Code:       code,
		Message:    e.Message,
	}
}
