// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The single factory New creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static attributes
// applied to every record, and ContextExtractor callbacks that pull
// request-scoped values (for example a session id) into each record at
// Handle time. NewFromConfig builds the same logger from an env-driven
// Config struct.
//
// Helper constructors in attr.go (Error, SessionID, Language, ...) keep
// attribute naming consistent across the codebase.
package logger
