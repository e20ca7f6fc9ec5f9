// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

// Command api is the entry point for the Tenufa HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start the view-counter flusher.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zfatbt/tenufa/internal/api"
	"github.com/zfatbt/tenufa/internal/news/ad"
	"github.com/zfatbt/tenufa/internal/news/alert"
	"github.com/zfatbt/tenufa/internal/news/comment"
	"github.com/zfatbt/tenufa/internal/news/contact"
	"github.com/zfatbt/tenufa/internal/news/newsletter"
	"github.com/zfatbt/tenufa/internal/news/newspaper"
	"github.com/zfatbt/tenufa/internal/news/post"
	"github.com/zfatbt/tenufa/internal/platform/config"
	"github.com/zfatbt/tenufa/internal/platform/constants"
	"github.com/zfatbt/tenufa/internal/platform/migration"
	pgstore "github.com/zfatbt/tenufa/internal/platform/postgres"
	redisstore "github.com/zfatbt/tenufa/internal/platform/redis"
	"github.com/zfatbt/tenufa/internal/platform/sec"
	"github.com/zfatbt/tenufa/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "tenufa"))
	slog.SetDefault(log)

	log.Info("[Tenufa] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "tenufa"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewUserRepository(pool), jwtSvc)
	postService := post.NewService(post.NewPostgresRepository(pool), post.NewRedisViewCounter(rdb), log)
	adService := ad.NewService(ad.NewPostgresRepository(pool))
	alertService := alert.NewService(alert.NewPostgresRepository(pool))
	commentService := comment.NewService(comment.NewPostgresRepository(pool))
	contactService := contact.NewService(contact.NewPostgresRepository(pool))
	newsletterService := newsletter.NewService(newsletter.NewPostgresRepository(pool))
	newspaperService := newspaper.NewService(newspaper.NewPostgresRepository(pool))

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService),
		Post:       post.NewHandler(postService),
		Ad:         ad.NewHandler(adService),
		Alert:      alert.NewHandler(alertService),
		Comment:    comment.NewHandler(commentService),
		Contact:    contact.NewHandler(contactService),
		Newsletter: newsletter.NewHandler(newsletterService),
		Newspaper:  newspaper.NewHandler(newspaperService),
	}

	if cfg.StaticDir != "" {
		handlers.Site = api.NewSiteHandler(cfg.StaticDir, cfg.PublicBaseURL, postService, log)
	}

	// ── 9. View-Counter Flusher ───────────────────────────────────────────
	// Drains Redis view counters into PostgreSQL on a fixed interval, and
	// one final time during shutdown.
	flusherCtx, flusherCancel := context.WithCancel(context.Background())
	flusherDone := make(chan struct{})
	go func() {
		defer close(flusherDone)
		ticker := time.NewTicker(constants.ViewFlushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := postService.FlushViews(flusherCtx); err != nil {
					log.Error("view_flush_failed", slog.Any("error", err))
				}
			case <-flusherCtx.Done():
				return
			}
		}
	}()

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	server := api.NewServer(flusherCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	// Stop the flusher and push any buffered view counts out before the
	// connections close.
	flusherCancel()
	<-flusherDone
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer flushCancel()
	if err := postService.FlushViews(flushCtx); err != nil {
		log.Error("final_view_flush_failed", slog.Any("error", err))
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
