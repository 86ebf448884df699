// Package server assembles the StockFlow HTTP API: routes, middleware and lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/stockflow/internal/server/handlers"
	"github.com/iudanet/stockflow/internal/server/middleware"
	"github.com/iudanet/stockflow/internal/server/storage"
)

const healthPath = "/api/v1/health"

// Store объединяет все хранилища, нужные API
type Store interface {
	storage.UserStorage
	storage.InventoryStorage
	storage.IdempotencyStorage
	handlers.Pinger
}

// Config настройки HTTP сервера
type Config struct {
	Addr            string
	Version         string
	JWT             handlers.JWTConfig
	ShutdownTimeout time.Duration

	// AuthRate запросов на register/login с одного IP за RateWindow
	AuthRate int
	// APIRate запросов одного пользователя за RateWindow
	APIRate    int
	RateWindow time.Duration
}

// DefaultConfig возвращает настройки по умолчанию
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		Version:         "dev",
		JWT:             handlers.JWTConfig{AccessTokenTTL: 15 * time.Minute},
		ShutdownTimeout: 10 * time.Second,
		AuthRate:        10,
		APIRate:         300,
		RateWindow:      time.Minute,
	}
}

// Server is the StockFlow API server.
type Server struct {
	logger      *slog.Logger
	httpServer  *http.Server
	router      chi.Router
	authLimiter *middleware.RateLimiter
	apiLimiter  *middleware.RateLimiter
	cfg         Config
}

// New собирает роутер поверх store
func New(cfg Config, store Store, logger *slog.Logger) *Server {
	s := &Server{
		logger:      logger,
		cfg:         cfg,
		authLimiter: middleware.NewRateLimiter(cfg.AuthRate, cfg.RateWindow),
		apiLimiter:  middleware.NewRateLimiter(cfg.APIRate, cfg.RateWindow),
	}
	s.router = s.buildRouter(store)
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) buildRouter(store Store) chi.Router {
	health := handlers.NewHealthHandler(s.logger, store, s.cfg.Version)
	auth := handlers.NewAuthHandler(s.logger, store, s.cfg.JWT)
	inventory := handlers.NewInventoryHandler(s.logger, store)
	idempotency := middleware.NewIdempotency(store, s.logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Tracing("stockflow-server"))
	r.Use(middleware.Logging(s.logger, healthPath))
	r.Use(middleware.Recovery(s.logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		handlers.SendError(w, s.logger, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		handlers.SendError(w, s.logger, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(s.authLimiter, s.logger))
			r.Post("/auth/register", auth.Register)
			r.Post("/auth/login", auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(s.logger, s.cfg.JWT))
			r.Use(middleware.RateLimit(s.apiLimiter, s.logger))
			r.Use(idempotency.Handler)

			r.Post("/movements", inventory.CreateMovement)
			r.Get("/movements", inventory.ListMovements)

			r.Get("/approvals", inventory.ListApprovals)
			r.Post("/approvals/{id}/act", inventory.ActOnApproval)

			r.Get("/notifications", inventory.ListNotifications)
			r.Post("/notifications/{id}/read", inventory.MarkNotificationRead)
		})
	})

	return r
}

// Handler returns the http.Handler for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run слушает адрес до отмены ctx, затем корректно завершает активные запросы
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.authLimiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		s.apiLimiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		s.logger.Info("HTTP server starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		s.logger.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("HTTP shutdown error; forcing close", slog.Any("error", err))
			return multierr.Append(err, s.httpServer.Close())
		}
		return nil
	})

	return g.Wait()
}
