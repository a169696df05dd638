package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError represents an HTTP error with a status code and a client-safe
// message. The message is written verbatim into the error body.
type HTTPError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTP error with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

// BadRequest creates a 400 error with the given message.
func BadRequest(message string) HTTPError {
	return HTTPError{Code: http.StatusBadRequest, Message: message}
}

// NotFound creates a 404 error with the given message.
func NotFound(message string) HTTPError {
	return HTTPError{Code: http.StatusNotFound, Message: message}
}

// Internal creates a 500 error with the given message.
func Internal(message string) HTTPError {
	return HTTPError{Code: http.StatusInternalServerError, Message: message}
}

// defaultErrorHandler writes the error as a JSON body with the appropriate
// status code. Non-HTTPError values collapse to a generic 500.
func defaultErrorHandler[C Context](ctx C, err error) {
	status, message := classify(err)
	writeError(ctx.ResponseWriter(), status, message)
}
