// Package server exposes the scheduler's ops endpoints: health, job status
// and prometheus metrics. The business API of the back office is a separate
// system and is not served here.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/condoboard/core/pkg/handlers/health"
	"github.com/condoboard/core/pkg/handlers/jobstatus"
	"github.com/condoboard/core/pkg/jobs"
	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/middleware"
)

// Server is the ops HTTP server running alongside the task engine
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	logger     *logger.Logger
	handlers   struct {
		health *health.Handler
		jobs   *jobstatus.Handler
	}
}

// New creates the ops server
func New(port string, log *logger.Logger, pool *pgxpool.Pool, engine jobs.TaskEngine, registry *prometheus.Registry) *Server {
	s := &Server{
		router: http.NewServeMux(),
		logger: log,
	}
	s.handlers.health = health.NewHandler(pool, log)
	s.handlers.jobs = jobstatus.NewHandler(engine, log)

	s.router.HandleFunc("/health", middleware.CORS(s.handlers.health.HealthCheck))
	s.router.HandleFunc("/jobs", middleware.CORS(s.handlers.jobs.List))
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start blocks serving HTTP until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info().
		Str("action", "server_start").
		Str("addr", s.httpServer.Addr).
		Msg("Starting ops server")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ops server failed on %s: %w", s.httpServer.Addr, err)
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Str("action", "server_stop").Msg("Stopping ops server")
	return s.httpServer.Shutdown(ctx)
}
