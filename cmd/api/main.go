// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

// Command api is the entry point for the Amar Infâncias HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/amarinfancias/amar-api/internal/api"
	"github.com/amarinfancias/amar-api/internal/core/category"
	"github.com/amarinfancias/amar-api/internal/core/child"
	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/core/contract"
	"github.com/amarinfancias/amar-api/internal/core/event"
	"github.com/amarinfancias/amar-api/internal/core/extraservice"
	"github.com/amarinfancias/amar-api/internal/core/financial"
	"github.com/amarinfancias/amar-api/internal/core/report"
	"github.com/amarinfancias/amar-api/internal/platform/config"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
	"github.com/amarinfancias/amar-api/internal/platform/migration"
	pgstore "github.com/amarinfancias/amar-api/internal/platform/postgres"
	redisstore "github.com/amarinfancias/amar-api/internal/platform/redis"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
	"github.com/amarinfancias/amar-api/internal/users/account"
	"github.com/amarinfancias/amar-api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Amar] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
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

	// Long-lived context for background workers (rate limiter cleanup).
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

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
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
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
	limiter := middleware.NewIPRateLimiter(appCtx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	loginThrottle := middleware.LoginThrottle(middleware.NewRedisCounter(rdb))

	authStore := auth.NewPostgresStore(pool)
	sessionGuard := middleware.SessionGuard(tokenService, authStore)
	authService := auth.NewService(authStore, tokenService)
	authHandler := auth.NewHandler(authService, loginThrottle)

	accountStore := account.NewPostgresStore(pool)
	accountService := account.NewService(
		accountStore,
		tokenService,
		account.NewLogMailer(log),
		log,
		cfg.BcryptCost,
		cfg.ResetLinkBase,
	)
	accountHandler := account.NewHandler(accountService, sessionGuard)

	clientStore := client.NewPostgresStore(pool)
	clientHandler := client.NewHandler(client.NewService(clientStore, log))

	childStore := child.NewPostgresStore(pool)
	childHandler := child.NewHandler(child.NewService(childStore, log))

	eventStore := event.NewPostgresStore(pool)
	eventHandler := event.NewHandler(event.NewService(eventStore, log))

	extraStore := extraservice.NewPostgresStore(pool)
	extraHandler := extraservice.NewHandler(extraservice.NewService(extraStore, log))

	contractStore := contract.NewPostgresStore(pool)
	contractHandler := contract.NewHandler(contract.NewService(contractStore, log))

	financialStore := financial.NewPostgresStore(pool)
	financialHandler := financial.NewHandler(financial.NewService(financialStore, log))

	expenseStore := category.NewPostgresStore(pool, category.KindExpense)
	expenseHandler := category.NewHandler(category.NewService(expenseStore, category.KindExpense, log))

	revenueStore := category.NewPostgresStore(pool, category.KindRevenue)
	revenueHandler := category.NewHandler(category.NewService(revenueStore, category.KindRevenue, log))

	reportService := report.NewService(contractStore, clientStore, financialStore, log)
	reportHandler := report.NewHandler(reportService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:        liveness,
		Readiness:       readiness,
		Auth:            authHandler,
		Account:         accountHandler,
		Client:          clientHandler,
		Child:           childHandler,
		Event:           eventHandler,
		ExtraService:    extraHandler,
		Contract:        contractHandler,
		Financial:       financialHandler,
		ExpenseCategory: expenseHandler,
		RevenueCategory: revenueHandler,
		Report:          reportHandler,
	}

	server := api.NewServer(cfg, log, limiter, tokenService, authStore, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
