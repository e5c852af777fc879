package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and a stable code.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
}

// NewHTTPError returns an HTTPError whose code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// AsHTTPError unwraps err into an HTTPError. Non-HTTP errors become 400s.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return &HTTPError{StatusCode: http.StatusBadRequest, Code: 1, Message: err.Error()}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
