// Copyright (c) 2026 Inner Garden. All rights reserved.

// Command api is the entry point for the Inner Garden gallery API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Load the artwork catalogue, seeding it on first boot.
//  7. Wire HTTP handlers.
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

	"github.com/innergarden/gallery/internal/admin/auth"
	"github.com/innergarden/gallery/internal/api"
	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/core/collection"
	"github.com/innergarden/gallery/internal/core/favorite"
	"github.com/innergarden/gallery/internal/platform/config"
	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/migration"
	pgstore "github.com/innergarden/gallery/internal/platform/postgres"
	redisstore "github.com/innergarden/gallery/internal/platform/redis"
	"github.com/innergarden/gallery/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("default_language", cfg.Language().String()),
	)

	// Root context for startup, bounded so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.Options{MaxConns: cfg.DatabaseMaxConns}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_pool_closing")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, redisstore.Options{PoolSize: cfg.RedisPoolSize}, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_client_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Catalogue ──────────────────────────────────────────────────────
	catalog := collection.NewCatalog()
	engine := collection.NewEngine(catalog, weightsFrom(cfg.Scoring))

	artworkService := artwork.NewService(artwork.NewPostgresRepository(pool), catalog, log)
	loaded, err := artworkService.LoadCatalog(startupCtx)
	must(log, err, "load artwork catalogue")

	if loaded == 0 && cfg.CatalogSeedPath != "" {
		records, err := artwork.ReadSeedFile(cfg.CatalogSeedPath)
		must(log, err, "read catalogue seed")

		imported, err := artworkService.Import(startupCtx, records)
		must(log, err, "import catalogue seed")
		log.Info("catalogue_seeded", slog.String("path", cfg.CatalogSeedPath), slog.Int("artworks", imported))
	}

	// ── 7. Auth ───────────────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	authService := auth.NewService([]auth.Account{
		{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash, Role: sec.RoleAdmin},
		{Username: cfg.CuratorUsername, PasswordHash: cfg.CuratorPasswordHash, Role: sec.RoleCurator},
	}, jwtSvc, constants.AdminTokenTTL)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context context.Context) error {
			return pgstore.Ping(context, pool)
		},
		CheckCache: func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		},
		CatalogSize: catalog.Len,
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	favoriteService := favorite.NewService(favorite.NewRedisStorage(rdb, constants.FavoritesTTL), catalog)
	messages := i18n.NewCatalogue(i18n.DefaultMessages)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Collection: collection.NewHandler(engine, favoriteService, messages),
		Artwork:    artwork.NewHandler(artworkService, favoriteService),
		Favorite:   favorite.NewHandler(favoriteService),
		Auth:       auth.NewHandler(authService),
	}

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON process logger.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
	)
}

// weightsFrom maps the scoring configuration onto search weights.
func weightsFrom(scoring config.Scoring) collection.Weights {
	return collection.Weights{
		Exact:        scoring.Exact,
		Substring:    scoring.Substring,
		Category:     scoring.Category,
		Mood:         scoring.Mood,
		PrimaryMood:  scoring.PrimaryMood,
		Palette:      scoring.Palette,
		Space:        scoring.Space,
		Availability: scoring.Availability,
		Price:        scoring.Price,
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
