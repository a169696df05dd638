// Package api exposes the JSON endpoints for instant language switching:
// flattened and per-module translation lookups plus read/write access to the
// session-stored language preference.
package api
