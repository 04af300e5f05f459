package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/media-finder/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withSession)

	router.Handle("/metrics", promhttp.Handler())

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/check", h.checkAuth)

		r.Get("/api/test", h.apiTest)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/debug/session", h.debugSession)
		r.Post("/contact/submit", h.submitContact)

		r.Get("/api/openverse/search", h.mediaSearch(models.ProviderOpenverse))
		r.Get("/api/youtube/search", h.mediaSearch(models.ProviderYouTube))
		r.Get("/api/youtube/video", h.youtubeVideo)
		r.Get("/api/pexels/search", h.mediaSearch(models.ProviderPexels))
		r.Get("/api/freesound/search", h.mediaSearch(models.ProviderFreesound))
	})

	// routes that need a session
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/search/save", h.saveSearch)
		r.Get("/search/recent", h.recentSearches)
		r.Delete("/search/{id}", h.deleteSearch)
		r.Get("/api/profile", h.profile)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
