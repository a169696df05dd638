package api

import (
	"io"
	"log/slog"

	"github.com/hausaware/langswitch/pkg/session"
	"github.com/hausaware/langswitch/pkg/translations"
)

// sessionLangKey is the session data key holding the language preference.
const sessionLangKey = "lang"

// Service exposes the translation and language-preference endpoints.
// The translation provider and session manager are injected dependencies;
// the service holds no state of its own between requests.
type Service struct {
	resolver *translations.Resolver
	sessions *session.Manager
	log      *slog.Logger
}

// NewService creates the API service over the given provider and session
// manager. A nil logger discards all records.
func NewService(provider translations.Provider, sessions *session.Manager, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		resolver: translations.NewResolver(provider, log),
		sessions: sessions,
		log:      log,
	}
}
