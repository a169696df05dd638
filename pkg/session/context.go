package session

import (
	"context"
	"log/slog"
)

type sessionContextKey struct{}

// NoSessionID is logged in place of a session identifier when the request
// carries no session.
const NoSessionID = "no-session-id"

// WithSession adds a session to the context.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// FromContext retrieves a session from the context.
func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok
}

// IDFromContext returns the session ID from the context, or NoSessionID when
// no session is attached.
func IDFromContext(ctx context.Context) string {
	session, ok := FromContext(ctx)
	if !ok || session == nil {
		return NoSessionID
	}
	return session.ID.String()
}

// LogExtractor injects the session ID into log records when a session is
// attached to the context. Intended for logger.WithContextExtractors.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	session, ok := FromContext(ctx)
	if !ok || session == nil {
		return slog.Attr{}, false
	}
	return slog.String("session_id", session.ID.String()), true
}
