package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/metrics"
)

// Upper bound for a single firing; a hung handler is cancelled here instead
// of stalling forever on a dead repository connection.
const executionTimeout = 30 * time.Minute

type cronTaskEngine struct {
	cron    *cron.Cron
	jobs    []Job
	logger  *logger.Logger
	metrics *metrics.JobMetrics

	mu      sync.Mutex
	started bool
}

// NewEngine creates a task engine firing in the given location.
// metrics may be nil.
func NewEngine(loc *time.Location, m *metrics.JobMetrics) TaskEngine {
	if loc == nil {
		loc = time.UTC
	}
	return &cronTaskEngine{
		cron:    cron.New(cron.WithLocation(loc)),
		jobs:    make([]Job, 0),
		logger:  logger.New("task-engine"),
		metrics: m,
	}
}

func (e *cronTaskEngine) Register(job Job) error {
	if job == nil {
		return fmt.Errorf("job cannot be nil")
	}

	e.logger.Info().
		Str("action", "register_job").
		Str("job_name", job.Name()).
		Str("schedule", job.Schedule()).
		Msg("Registering job")

	// Each firing is wrapped individually so one job's failure can never
	// stop the engine or another job's schedule.
	_, err := e.cron.AddFunc(job.Schedule(), func() {
		requestID := uuid.New().String()
		jobLogger := e.logger.WithRequestID(requestID).WithJob(job.Name())

		ctx, cancel := context.WithTimeout(context.Background(), executionTimeout)
		defer cancel()
		ctx = jobLogger.ToContext(ctx)

		jobLogger.LogJobStart(job.Name(), job.Schedule())
		start := time.Now()

		err := job.Execute(ctx)
		duration := time.Since(start)
		e.metrics.ObserveRun(job.Name(), duration, err)

		if err != nil {
			jobLogger.Error().
				Err(err).
				Str("action", "job_failed").
				Dur("duration", duration).
				Msg("Job execution failed")
			return
		}
		jobLogger.LogJobComplete(job.Name(), duration, 0, 0)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	e.jobs = append(e.jobs, job)
	return nil
}

func (e *cronTaskEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		e.logger.Debug().Str("action", "start_noop").Msg("Engine already started")
		return nil
	}

	e.logger.Info().
		Str("action", "engine_start").
		Int("job_count", len(e.jobs)).
		Msg("Starting task engine")
	e.cron.Start()
	e.started = true
	return nil
}

func (e *cronTaskEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return nil
	}

	e.logger.Info().Str("action", "engine_stop").Msg("Stopping task engine")
	ctx := e.cron.Stop()
	<-ctx.Done()
	e.started = false
	e.logger.Info().Str("action", "engine_stopped").Msg("Task engine stopped")
	return nil
}

func (e *cronTaskEngine) Jobs() []Job {
	return append([]Job(nil), e.jobs...)
}
