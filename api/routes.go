package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog/log"
)

// setupAPIRoutes mounts the JSON API under /api
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	responder := NewResponder(log.With().Str("handlerName", "apiRouter").Logger())

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Get("/health", handlers.healthHandler.health())

		// Unknown API paths answer in JSON instead of falling through to the SPA
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			responder.WriteError(w, req, errs.NewNotFoundError("route").WithMessage("not found"))
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
			responder.WriteError(w, req, errs.NewApiErr(http.StatusMethodNotAllowed, "method not allowed"))
		})
	})
}

// setupAssetRoutes hands every non-API path to the frontend asset handler
func setupAssetRoutes(r chi.Router, assets http.Handler) {
	r.NotFound(assets.ServeHTTP)
	r.MethodNotAllowed(assets.ServeHTTP)
}
