package jobs

import "context"

// Job represents a schedulable job that can be executed by the task engine
type Job interface {
	// Execute runs the job with the given context
	Execute(ctx context.Context) error

	// Name returns a stable identifier for the job
	Name() string

	// Schedule returns the cron schedule expression for this job.
	// Format: "minute hour day month weekday" or "@every duration".
	Schedule() string
}

// TaskEngine owns the set of named, independently scheduled jobs
type TaskEngine interface {
	// Register adds a job to the engine, validating its schedule
	Register(job Job) error

	// Start begins firing registered jobs at their scheduled times.
	// Calling Start on a running engine is a no-op.
	Start() error

	// Stop cancels all live schedules and waits for in-flight handlers.
	// In-flight executions are not forcibly aborted.
	Stop() error

	// Jobs returns all registered jobs
	Jobs() []Job
}
