package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/uraita-dev/uraita/frontend/internal/handler"
	"github.com/uraita-dev/uraita/frontend/internal/setup"
	mw "github.com/uraita-dev/uraita/shared/middleware"
	"github.com/uraita-dev/uraita/shared/middleware/metrics"
)

const csp = "default-src 'self'"

func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(false, csp))

	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(deps.StaticPath))))
	r.Get("/favicon.ico", handler.FaviconHandler)

	r.Get("/", deps.Handler.BoardGetHandler)
	r.Post("/", deps.Handler.BoardPostHandler)
	r.Get("/{thread}", deps.Handler.ThreadGetHandler)
	r.Post("/{thread}", deps.Handler.ThreadPostHandler)
	r.Get("/{thread}/refresh", deps.Handler.ThreadRefreshHandler)

	r.NotFound(deps.Handler.NotFoundHandler)

	return r
}
