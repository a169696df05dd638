package api

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/hausaware/langswitch/pkg/session"
	"github.com/hausaware/langswitch/pkg/translations"
)

type requestLanguageKey struct{}

// langMatcher matches Accept-Language headers against the supported set.
// The first tag is the fallback.
var langMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Make("ha"),
})

// DetectLanguage resolves the request's effective language and stores it in
// the context: the session preference wins, then the Accept-Language header,
// then English. Handlers keep their own validation; this value feeds
// request-scoped logging and any surrounding page rendering.
func (s *Service) DetectLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := translations.DefaultLanguage

		if sess, ok := session.FromContext(r.Context()); ok {
			if code, found := sess.GetString(sessionLangKey); found {
				if parsed, err := translations.ParseLanguage(code); err == nil {
					lang = parsed
				}
			}
		} else if accept := r.Header.Get("Accept-Language"); accept != "" {
			tag, _ := language.MatchStrings(langMatcher, accept)
			if base, _ := tag.Base(); base.String() == string(translations.Hausa) {
				lang = translations.Hausa
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestLanguageKey{}, lang)))
	})
}

// RequestLanguage returns the language resolved by DetectLanguage,
// defaulting to English when the middleware did not run.
func RequestLanguage(ctx context.Context) translations.Language {
	if lang, ok := ctx.Value(requestLanguageKey{}).(translations.Language); ok {
		return lang
	}
	return translations.DefaultLanguage
}

// LanguageLogExtractor injects the resolved request language into log
// records. Intended for logger.WithContextExtractors.
func LanguageLogExtractor(ctx context.Context) (slog.Attr, bool) {
	lang, ok := ctx.Value(requestLanguageKey{}).(translations.Language)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_lang", lang.String()), true
}
