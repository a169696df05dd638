package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hausaware/langswitch/handler"
)

// Router builds the API router. Mount it under the desired prefix:
//
//	r := chi.NewRouter()
//	r.Mount("/api", svc.Router())
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(s.sessions.Middleware)
	r.Use(s.DetectLanguage)

	r.Get("/translations/{lang}", s.getTranslations())
	r.Get("/translations/module/{module}/{lang}", s.getModuleTranslations())
	r.Get("/language/current", s.getCurrentLanguage())
	r.Post("/language/set/{lang}", s.setLanguage())

	r.NotFound(handler.NotFoundHandler("API endpoint not found"))
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		_ = handler.Error(handler.NewHTTPError(http.StatusMethodNotAllowed, "Method not allowed")).Render(w, req)
	})

	return r
}

// Handle returns the router as a plain http.Handler.
func (s *Service) Handle() http.Handler {
	return s.Router()
}
