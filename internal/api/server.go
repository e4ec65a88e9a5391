// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

It is the composition root for the HTTP transport: only this package and
cmd/api import net/http server primitives. The public catalog, intake
forms, and the authenticated editorial surface are mounted side by side
under one versioned prefix.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/avironin/insight-api/internal/core/author"
	"github.com/avironin/insight-api/internal/core/post"
	"github.com/avironin/insight-api/internal/intake/contact"
	"github.com/avironin/insight-api/internal/intake/newsletter"
	"github.com/avironin/insight-api/internal/platform/config"
	"github.com/avironin/insight-api/internal/platform/constants"
	"github.com/avironin/insight-api/internal/platform/middleware"
	"github.com/avironin/insight-api/internal/users/auth"
)

// Server wraps the chi router and the [http.Server]. It is constructed
// once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// Handlers groups all domain-specific HTTP handler sets.
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process is up.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 when all dependencies answer.
	Readiness http.HandlerFunc

	// Auth handles the admin session routes.
	Auth *auth.Handler

	// Post serves the content catalog, public and editorial.
	Post *post.Handler

	// Author manages the contributor registry.
	Author *author.Handler

	// Contact receives inbound inquiries.
	Contact *contact.Handler

	// Newsletter receives mailing list signups.
	Newsletter *newsletter.Handler
}

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// Global middleware, in execution order.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", h.Auth.RegisterRoutes)

		// Public surface. Reads are gated on publication state inside the
		// stores; intake routes are write-only.
		api.Route("/posts", h.Post.RegisterPublicRoutes)
		api.Route("/authors", h.Author.RegisterPublicRoutes)
		api.Route("/contact", h.Contact.RegisterPublicRoutes)
		api.Route("/newsletter", h.Newsletter.RegisterPublicRoutes)

		// Editorial surface. Every group below re-checks the admin role.
		api.Route("/admin", func(admin chi.Router) {
			admin.Route("/posts", h.Post.RegisterAdminRoutes)
			admin.Route("/authors", h.Author.RegisterAdminRoutes)
			admin.Route("/contact", h.Contact.RegisterAdminRoutes)
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

// ListenAndServe starts the HTTP server. It blocks until the server is
// closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
