package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hausaware/langswitch/binder"
	"github.com/hausaware/langswitch/handler"
	"github.com/hausaware/langswitch/pkg/logger"
	"github.com/hausaware/langswitch/pkg/session"
	"github.com/hausaware/langswitch/pkg/translations"
)

// languageResponse reports the current session language.
type languageResponse struct {
	Language    string `json:"language"`
	DisplayName string `json:"display_name"`
}

// setLanguageResponse confirms a language change.
type setLanguageResponse struct {
	Success     bool   `json:"success"`
	Language    string `json:"language"`
	DisplayName string `json:"display_name"`
}

// getCurrentLanguage reads the session's language preference, defaulting to
// English when the session or preference is absent.
func (s *Service) getCurrentLanguage() http.HandlerFunc {
	h := handler.HandlerFunc[handler.Context, struct{}](
		func(ctx handler.Context, _ struct{}) handler.Response {
			lang := translations.DefaultLanguage

			sess, err := s.sessions.Get(ctx, ctx.Request())
			switch {
			case err == nil:
				if code, ok := sess.GetString(sessionLangKey); ok {
					if parsed, perr := translations.ParseLanguage(code); perr == nil {
						lang = parsed
					}
				}
			case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrSessionExpired):
				// No session yet: fall through to the default language.
			default:
				s.log.ErrorContext(ctx, "failed to get current language",
					logger.Error(err),
					logger.SessionID(session.IDFromContext(ctx)),
				)
				return handler.Error(handler.Internal("Failed to get current language"))
			}

			return handler.JSON(languageResponse{
				Language:    lang.String(),
				DisplayName: lang.DisplayName(),
			})
		},
	)

	return handler.Wrap(h)
}

type setLanguageRequest struct {
	Lang string `path:"lang"`
}

// setLanguage writes the language preference into the session. The session
// is created on first use and marked modified so the store persists it.
func (s *Service) setLanguage() http.HandlerFunc {
	h := handler.HandlerFunc[handler.Context, setLanguageRequest](
		func(ctx handler.Context, req setLanguageRequest) handler.Response {
			lang, err := translations.ParseLanguage(req.Lang)
			if err != nil {
				return handler.Error(handler.BadRequest("Invalid language code"))
			}

			sess, err := s.sessions.Ensure(ctx, ctx.ResponseWriter(), ctx.Request())
			if err != nil {
				s.log.ErrorContext(ctx, "failed to set language",
					logger.Error(err),
					logger.Language(req.Lang),
					logger.SessionID(session.IDFromContext(ctx)),
				)
				return handler.Error(handler.Internal("Failed to set language"))
			}

			sess.Set(sessionLangKey, lang.String())
			if err := s.sessions.Save(ctx, sess); err != nil {
				s.log.ErrorContext(ctx, "failed to set language",
					logger.Error(err),
					logger.Language(req.Lang),
					logger.SessionID(sess.ID.String()),
				)
				return handler.Error(handler.Internal("Failed to set language"))
			}

			s.log.InfoContext(ctx, "language set via api",
				logger.Language(req.Lang),
				logger.SessionID(sess.ID.String()),
			)

			return handler.JSON(setLanguageResponse{
				Success:     true,
				Language:    lang.String(),
				DisplayName: lang.DisplayName(),
			})
		},
	)

	return handler.Wrap(h,
		handler.WithBinders[handler.Context, setLanguageRequest](binder.Path(chi.URLParam)),
	)
}
