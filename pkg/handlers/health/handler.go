package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models/api"
)

// Handler handles health check requests
type Handler struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

// NewHandler creates a new health handler
func NewHandler(pool *pgxpool.Pool, log *logger.Logger) *Handler {
	return &Handler{
		pool:   pool,
		logger: log,
	}
}

// HealthCheck handles the /health endpoint
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	response := api.HealthResponse{
		Status:    "ok",
		Database:  "ok",
		Timestamp: time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.pool.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
		h.logger.Error().
			Err(err).
			Str("action", "health_db_ping_failed").
			Msg("Database ping failed during health check")
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "health_check_failed").
			Str("endpoint", "/health").
			Msg("Failed to encode health response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	h.logger.Debug().
		Str("action", "health_check").
		Str("endpoint", "/health").
		Str("method", r.Method).
		Str("remote_addr", r.RemoteAddr).
		Dur("duration", time.Since(start)).
		Msg("Health check completed")
}
