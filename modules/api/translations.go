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

type getTranslationsRequest struct {
	Lang string `path:"lang"`
}

// getTranslations serves all translations for a language, flattened across
// modules with the common overlay applied.
func (s *Service) getTranslations() http.HandlerFunc {
	h := handler.HandlerFunc[handler.Context, getTranslationsRequest](
		func(ctx handler.Context, req getTranslationsRequest) handler.Response {
			lang, err := translations.ParseLanguage(req.Lang)
			if err != nil {
				return handler.Error(handler.BadRequest("Invalid language code"))
			}

			flat, err := s.resolver.Flattened(ctx, lang)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to serve translations",
					logger.Error(err),
					logger.Language(req.Lang),
					logger.SessionID(session.IDFromContext(ctx)),
				)
				return handler.Error(handler.Internal("Failed to load translations"))
			}

			s.log.InfoContext(ctx, "served translations",
				logger.Count(len(flat)),
				logger.Language(req.Lang),
				logger.SessionID(session.IDFromContext(ctx)),
			)

			return handler.JSON(flat)
		},
	)

	return handler.Wrap(h,
		handler.WithBinders[handler.Context, getTranslationsRequest](binder.Path(chi.URLParam)),
	)
}

type getModuleTranslationsRequest struct {
	Module string `path:"module"`
	Lang   string `path:"lang"`
}

// getModuleTranslations serves one module's translations for a language.
func (s *Service) getModuleTranslations() http.HandlerFunc {
	h := handler.HandlerFunc[handler.Context, getModuleTranslationsRequest](
		func(ctx handler.Context, req getModuleTranslationsRequest) handler.Response {
			lang, err := translations.ParseLanguage(req.Lang)
			if err != nil {
				return handler.Error(handler.BadRequest("Invalid language code"))
			}

			strings, err := s.resolver.Module(ctx, req.Module, lang)
			if err != nil {
				var notFound *translations.ModuleNotFoundError
				if errors.As(err, &notFound) {
					return handler.Error(handler.NotFound(`Module "` + notFound.Module + `" not found`))
				}

				s.log.ErrorContext(ctx, "failed to serve module translations",
					logger.Error(err),
					logger.Module(req.Module),
					logger.Language(req.Lang),
					logger.SessionID(session.IDFromContext(ctx)),
				)
				return handler.Error(handler.Internal("Failed to load module translations"))
			}

			s.log.InfoContext(ctx, "served module translations",
				logger.Count(len(strings)),
				logger.Module(req.Module),
				logger.Language(req.Lang),
				logger.SessionID(session.IDFromContext(ctx)),
			)

			return handler.JSON(strings)
		},
	)

	return handler.Wrap(h,
		handler.WithBinders[handler.Context, getModuleTranslationsRequest](binder.Path(chi.URLParam)),
	)
}
