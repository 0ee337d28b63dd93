// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
  - Every route group except /api/v1/auth and the health probes sits behind
    the session guard.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/amarinfancias/amar-api/internal/users/account"
	"github.com/amarinfancias/amar-api/internal/users/auth"
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

	// Auth handles the session routes (login, logout, reset landing).
	Auth *auth.Handler

	// Account manages the admin accounts; its router guards its own
	// protected subset.
	Account *account.Handler

	// Client manages the customer registry.
	Client *client.Handler

	// Child manages the children registry.
	Child *child.Handler

	// Event manages the agenda.
	Event *event.Handler

	// ExtraService manages the add-on catalog.
	ExtraService *extraservice.Handler

	// Contract manages service contracts and their add-on links.
	Contract *contract.Handler

	// Financial manages the bookkeeping records.
	Financial *financial.Handler

	// ExpenseCategory and RevenueCategory manage the bookkeeping categories.
	ExpenseCategory *category.Handler
	RevenueCategory *category.Handler

	// Report serves the dashboard filter aggregations.
	Report *report.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	cfg *config.Config,
	log *slog.Logger,
	limiter *middleware.IPRateLimiter,
	tokens middleware.SessionTokens,
	sessions middleware.SessionReader,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(limiter))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// The auth group is public; the account router guards its own protected
	// subset (registration and reset requests have no session yet); every
	// other group requires a session.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Account.Routes())

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.SessionGuard(tokens, sessions))

			protected.Mount("/clients", h.Client.Routes())
			protected.Mount("/children", h.Child.Routes())
			protected.Mount("/events", h.Event.Routes())
			protected.Mount("/services", h.ExtraService.Routes())
			protected.Mount("/contracts", h.Contract.Routes())
			protected.Mount("/financial-records", h.Financial.Routes())
			protected.Mount("/expense-categories", h.ExpenseCategory.Routes())
			protected.Mount("/revenue-categories", h.RevenueCategory.Routes())
			protected.Mount("/filters", h.Report.Routes())
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
