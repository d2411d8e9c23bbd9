package jobs

import (
	"context"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/metrics"
)

// SingleFlightJob wraps a job with a per-name lock so overlapping firings of
// the same job skip instead of running concurrently. It does not protect
// against duplication across process restarts; the storage-level unique
// constraints cover that case.
type SingleFlightJob struct {
	job     Job
	locks   LockManager
	logger  *logger.Logger
	metrics *metrics.JobMetrics
}

// WithSingleFlight wraps a job with the single-flight guard
func WithSingleFlight(job Job, locks LockManager, m *metrics.JobMetrics) Job {
	return &SingleFlightJob{
		job:     job,
		locks:   locks,
		logger:  logger.New("single-flight"),
		metrics: m,
	}
}

func (s *SingleFlightJob) Execute(ctx context.Context) error {
	acquired, err := s.locks.AcquireLock(ctx, s.job.Name())
	if err != nil {
		return err
	}
	if !acquired {
		s.logger.Info().
			Str("job_name", s.job.Name()).
			Str("action", "firing_skipped").
			Msg("Previous run still in flight, skipping this firing")
		s.metrics.ObserveSkip(s.job.Name())
		return nil
	}
	defer func() {
		if err := s.locks.ReleaseLock(ctx, s.job.Name()); err != nil {
			s.logger.Error().
				Err(err).
				Str("job_name", s.job.Name()).
				Msg("Failed to release job lock")
		}
	}()

	return s.job.Execute(ctx)
}

func (s *SingleFlightJob) Name() string {
	return s.job.Name()
}

func (s *SingleFlightJob) Schedule() string {
	return s.job.Schedule()
}
