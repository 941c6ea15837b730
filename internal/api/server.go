// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/innergarden/gallery/internal/admin/auth"
	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/core/collection"
	"github.com/innergarden/gallery/internal/core/favorite"
	"github.com/innergarden/gallery/internal/platform/config"
	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when postgres and redis answer.
	Readiness http.HandlerFunc

	// Collection serves search and the filter vocabulary.
	Collection *collection.Handler

	// Artwork serves artwork details and back-office management.
	Artwork *artwork.Handler

	// Favorite serves visitor favourites.
	Favorite *favorite.Handler

	// Auth handles back-office login.
	Auth *auth.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Language(cfg.Language()))

		// Public gallery, identified by an anonymous visitor id.
		api.Group(func(public chi.Router) {
			public.Use(middleware.Visitor(cfg.IsProduction()))

			public.Route("/collection", h.Collection.RegisterRoutes)
			public.Route("/artworks", h.Artwork.RegisterRoutes)
			public.Route("/favorites", h.Favorite.RegisterRoutes)
		})

		// Back office.
		api.Route("/admin", func(admin chi.Router) {
			h.Auth.RegisterRoutes(admin)

			admin.Route("/artworks", func(artworks chi.Router) {
				artworks.Use(middleware.Authenticate(verifier))
				artworks.Use(middleware.RequireAuth)
				h.Artwork.RegisterAdminRoutes(artworks)
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
