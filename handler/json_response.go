package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// jsonResponse implements Response for JSON rendering.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets a custom HTTP status code.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON creates a 200 JSON response rendering v as the body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Error creates a JSON error response with body {"error": "<message>"}.
// HTTPError values carry their own status code and message; any other error
// becomes a 500 with a generic message so internal detail never reaches the
// client.
func Error(err error, opts ...JSONOption) Response {
	status, message := classify(err)

	r := &jsonResponse{
		status: status,
		body:   ErrorBody{Error: message},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// classify maps an error to a status code and a client-safe message.
func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}

// writeError writes an error response directly, for use outside the typed
// handler flow (router fallbacks, error handlers).
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Error: message})
}

// NotFoundHandler responds with a JSON 404 for unmatched routes.
func NotFoundHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, message)
	}
}
