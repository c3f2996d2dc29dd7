package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/c4flow/studio-service/internal/api/handlers"
	"github.com/c4flow/studio-service/internal/api/middleware"
)

// NewRouter builds the HTTP router for the studio-service
func NewRouter(site handlers.SiteService, contact handlers.ContactService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)

	siteHandler := handlers.NewSiteHandler(site)
	contactHandler := handlers.NewContactHandler(contact)

	r.Route("/classes", func(r chi.Router) {
		r.Get("/", siteHandler.ListClasses)
		r.Get("/{slug}", siteHandler.GetClass)
	})
	r.Get("/bundles", siteHandler.ListBundles)
	r.Get("/schedule", siteHandler.GetSchedule)
	r.Get("/banner", siteHandler.GetBanner)

	r.Post("/contact", contactHandler.Submit)

	// health
	r.Get("/health", handlers.Health)

	return r
}
