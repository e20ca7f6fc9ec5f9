// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

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

	"github.com/zfatbt/tenufa/internal/news/ad"
	"github.com/zfatbt/tenufa/internal/news/alert"
	"github.com/zfatbt/tenufa/internal/news/comment"
	"github.com/zfatbt/tenufa/internal/news/contact"
	"github.com/zfatbt/tenufa/internal/news/newsletter"
	"github.com/zfatbt/tenufa/internal/news/newspaper"
	"github.com/zfatbt/tenufa/internal/news/post"
	"github.com/zfatbt/tenufa/internal/platform/config"
	"github.com/zfatbt/tenufa/internal/platform/constants"
	"github.com/zfatbt/tenufa/internal/platform/middleware"
	"github.com/zfatbt/tenufa/internal/users/auth"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, and account administration.
	Auth *auth.Handler

	// Post handles the article catalogue.
	Post *post.Handler

	// Ad handles advertisement placements.
	Ad *ad.Handler

	// Alert handles the breaking-news ticker.
	Alert *alert.Handler

	// Comment handles reader discussion threads.
	Comment *comment.Handler

	// Contact handles the contact-form inbox.
	Contact *contact.Handler

	// Newsletter handles the mailing-list roster.
	Newsletter *newsletter.Handler

	// Newspaper handles the weekly PDF edition archive.
	Newspaper *newspaper.Handler

	// Site serves the SPA bundle with share-metadata injection; nil disables it.
	Site *SiteHandler
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
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// The web client predates versioned prefixes; routes stay under /api.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/", h.Auth.Routes())
		api.Mount("/posts", h.Post.Routes())
		api.Mount("/ads", h.Ad.Routes())
		api.Mount("/alerts", h.Alert.Routes())
		api.Mount("/comments", h.Comment.Routes())
		api.Mount("/contact", h.Contact.Routes())
		api.Mount("/newsletter", h.Newsletter.Routes())
		api.Mount("/newspapers", h.Newspaper.Routes())

		api.NotFound(apiNotFound)
	})

	// # SPA Delivery
	// Everything that is not /api or a probe falls through to the bundle.
	if h.Site != nil {
		h.Site.Register(r)
	}

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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
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

// apiNotFound keeps unknown /api paths JSON instead of falling through to
// the SPA's index.html.
func apiNotFound(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(http.StatusNotFound)
	_, _ = writer.Write([]byte(`{"msg":"Not found","code":"NOT_FOUND"}`))
}
