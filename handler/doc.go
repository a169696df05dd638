// Package handler provides a thin, type-safe layer over net/http handlers.
//
// A HandlerFunc receives a Context (wrapping the request and response
// writer) and a typed request struct populated by Bind functions, and
// returns a Response that knows how to render itself. Wrap converts the
// typed handler into a plain http.HandlerFunc for registration on any
// router.
//
// JSON and Error build the two response shapes this service speaks: raw
// JSON payloads and {"error": "<message>"} bodies. HTTPError carries a
// status code together with a client-safe message; anything else surfaces
// as a generic 500.
package handler
