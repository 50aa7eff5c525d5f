package errors

import "net/http"

// HTTPError is an error carrying the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
)
