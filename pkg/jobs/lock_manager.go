package jobs

import (
	"context"
	"crypto/md5"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/condoboard/core/pkg/logger"
)

// DBTX is the minimal database access the lock manager needs.
// *pgxpool.Pool satisfies it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LockManager serializes job executions across overlapping firings
type LockManager interface {
	// AcquireLock attempts to acquire the lock for the given job.
	// Returns false if the lock is already held elsewhere.
	AcquireLock(ctx context.Context, jobName string) (bool, error)

	// ReleaseLock releases the lock for the given job
	ReleaseLock(ctx context.Context, jobName string) error
}

// AdvisoryLockManager implements LockManager with PostgreSQL advisory locks,
// so overlapping runs of the same job skip instead of racing the
// check-then-write idempotence logic.
type AdvisoryLockManager struct {
	db     DBTX
	logger *logger.Logger
}

func NewAdvisoryLockManager(db DBTX) *AdvisoryLockManager {
	return &AdvisoryLockManager{
		db:     db,
		logger: logger.New("job-lock-manager"),
	}
}

// lockID derives a consistent int64 advisory lock key from the job name
func lockID(jobName string) int64 {
	hash := md5.Sum([]byte(jobName))

	id := int64(0)
	for i := 0; i < 8; i++ {
		id = id<<8 + int64(hash[i])
	}
	if id < 0 {
		id = -id
	}
	return id
}

func (m *AdvisoryLockManager) AcquireLock(ctx context.Context, jobName string) (bool, error) {
	id := lockID(jobName)

	var acquired bool
	err := m.db.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", id).Scan(&acquired)
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock for job %s: %w", jobName, err)
	}

	if acquired {
		m.logger.Debug().
			Str("job_name", jobName).
			Int64("lock_id", id).
			Str("action", "lock_acquired").
			Msg("Acquired advisory lock")
	} else {
		m.logger.Info().
			Str("job_name", jobName).
			Int64("lock_id", id).
			Str("action", "lock_held").
			Msg("Advisory lock already held, job overlap detected")
	}
	return acquired, nil
}

func (m *AdvisoryLockManager) ReleaseLock(ctx context.Context, jobName string) error {
	id := lockID(jobName)

	var released bool
	err := m.db.QueryRow(ctx, "SELECT pg_advisory_unlock($1)", id).Scan(&released)
	if err != nil {
		return fmt.Errorf("failed to release lock for job %s: %w", jobName, err)
	}
	if !released {
		m.logger.Warn().
			Str("job_name", jobName).
			Int64("lock_id", id).
			Str("action", "lock_not_held").
			Msg("Attempted to release lock that was not held")
	}
	return nil
}
