package jobs

import (
	"context"
	"time"

	"github.com/condoboard/core/pkg/logger"
)

// BackupOperator produces compressed dumps and expires old artifacts
type BackupOperator interface {
	CreateBackup(ctx context.Context) (string, error)
	CleanOldBackups(ctx context.Context, retentionDays int) (int, error)
}

// DailyBackupJob produces one dump per day and enforces the retention window
type DailyBackupJob struct {
	operator      BackupOperator
	retentionDays int
}

func NewDailyBackupJob(operator BackupOperator, retentionDays int) Job {
	return &DailyBackupJob{
		operator:      operator,
		retentionDays: retentionDays,
	}
}

func (j *DailyBackupJob) Execute(ctx context.Context) error {
	log := logger.WithContext(ctx, "daily-backup")
	start := time.Now()

	path, err := j.operator.CreateBackup(ctx)
	if err != nil {
		return err
	}

	removed, err := j.operator.CleanOldBackups(ctx, j.retentionDays)
	if err != nil {
		return err
	}

	log.Info().
		Str("action", "backup_done").
		Str("path", path).
		Int("expired_removed", removed).
		Dur("duration", time.Since(start)).
		Msg("Daily backup completed")
	return nil
}

func (j *DailyBackupJob) Name() string {
	return "daily_backup"
}

func (j *DailyBackupJob) Schedule() string {
	// Daily at 02:00, before the business day starts
	return "0 2 * * *"
}
