package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/content", handlers.contentHandler.getContent())
		r.Get("/button-status", handlers.statusHandler.getButtonStatus())
		r.Post("/apply", handlers.applyHandler.submitApplication())
		r.Get("/health", handlers.healthHandler.getHealth())
	})
}
