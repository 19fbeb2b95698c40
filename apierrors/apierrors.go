package apierrors

import "net/http"

// APIError carries the HTTP status a handler wants the terminal error
// middleware to respond with. Anything else becomes a 500.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewBadRequest(msg string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: msg}
}

func NewUnauthenticated(msg string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: msg}
}

func NewNotFound(msg string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: msg}
}
