package jobstatus

import (
	"encoding/json"
	"net/http"

	"github.com/condoboard/core/pkg/jobs"
	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/models/api"
)

// Handler reports the jobs registered with the task engine
type Handler struct {
	engine jobs.TaskEngine
	logger *logger.Logger
}

// NewHandler creates a new job status handler
func NewHandler(engine jobs.TaskEngine, log *logger.Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: log,
	}
}

// List handles the /jobs endpoint
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	registered := h.engine.Jobs()

	response := api.JobListResponse{
		Jobs:  make([]api.JobResponse, 0, len(registered)),
		Count: len(registered),
	}
	for _, job := range registered {
		response.Jobs = append(response.Jobs, api.JobResponse{
			Name:     job.Name(),
			Schedule: job.Schedule(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error().
			Err(err).
			Str("action", "job_list_failed").
			Str("endpoint", "/jobs").
			Msg("Failed to encode job list response")
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
