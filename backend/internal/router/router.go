package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uraita-dev/uraita/backend/internal/setup"
	mw "github.com/uraita-dev/uraita/shared/middleware"
	"github.com/uraita-dev/uraita/shared/middleware/metrics"
)

// New creates and configures the backend API router.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(metrics.Middleware)

	// CORS for the web frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:8081"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(false, backendCSP))

	h := deps.Handler

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/threads", func(r chi.Router) {
			r.Get("/", h.ListThreads)
			r.Post("/", h.CreateThread)
			r.Get("/{thread}", h.GetThread)
			r.Get("/{thread}/posts", h.ListPosts)
			r.Post("/{thread}/posts", h.CreatePost)
		})
	})

	return r
}
