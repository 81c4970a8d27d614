package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  pinger
	logger *slog.Logger
}

func NewHealthHandler(store pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{store: store, logger: logger}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	if err := writeJSON(w, code, jsonResponse{"status": status}, nil); err != nil {
		h.logger.ErrorContext(ctx, "failed to write health response", slog.Any("error", err))
	}
}
