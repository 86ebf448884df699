package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/stockflow/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check; db may be nil
func NewHealthHandler(logger *slog.Logger, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health.
// Клиенты используют его как проверку связи: 503 означает "сервер недоступен".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check: database unavailable", slog.Any("error", err))
			SendError(w, h.logger, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	SendJSON(w, h.logger, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
