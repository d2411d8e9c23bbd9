// Package backup produces and expires compressed database dumps.
package backup

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/sony/gobreaker"

	"github.com/condoboard/core/pkg/logger"
)

const artifactSuffix = ".sql.gz"

// Operator creates timestamped compressed dumps in a configured directory and
// removes artifacts older than the retention window.
type Operator struct {
	databaseURL string
	dir         string
	prefix      string
	logger      *logger.Logger
	breaker     *gobreaker.CircuitBreaker

	// Overridable in tests
	now  func() time.Time
	dump func(ctx context.Context, w io.Writer) error
}

// NewOperator creates a backup operator. The dump prefix is derived from the
// database name so artifacts stay recognizable in a shared directory.
func NewOperator(databaseURL, dir, dbName string) *Operator {
	op := &Operator{
		databaseURL: databaseURL,
		dir:         dir,
		prefix:      slug.Make(dbName),
		logger:      logger.New("backup-operator"),
		now:         time.Now,
	}
	op.dump = op.pgDump

	// pg_dump failures tend to repeat (missing binary, bad credentials,
	// full disk). After three consecutive failures the breaker fails fast
	// for a while instead of spawning more doomed subprocesses.
	op.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "pg_dump",
		Timeout: 30 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			op.logger.Warn().
				Str("action", "breaker_state_change").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Backup circuit breaker changed state")
		},
	})
	return op
}

// CreateBackup writes one compressed dump and returns its path
func (o *Operator) CreateBackup(ctx context.Context) (string, error) {
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory %s: %w", o.dir, err)
	}

	name := fmt.Sprintf("%s-%s%s", o.prefix, o.now().Format("20060102-150405"), artifactSuffix)
	path := filepath.Join(o.dir, name)

	_, err := o.breaker.Execute(func() (interface{}, error) {
		return nil, o.writeDump(ctx, path)
	})
	if err != nil {
		return "", fmt.Errorf("backup failed: %w", err)
	}

	o.logger.Info().
		Str("action", "backup_created").
		Str("path", path).
		Msg("Database dump created")
	return path, nil
}

func (o *Operator) writeDump(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}

	gz := gzip.NewWriter(f)
	dumpErr := o.dump(ctx, gz)
	if err := gz.Close(); err != nil && dumpErr == nil {
		dumpErr = fmt.Errorf("failed to finish gzip stream: %w", err)
	}
	if err := f.Close(); err != nil && dumpErr == nil {
		dumpErr = fmt.Errorf("failed to close dump file: %w", err)
	}

	if dumpErr != nil {
		// Do not leave truncated artifacts behind
		_ = os.Remove(path)
		return dumpErr
	}
	return nil
}

func (o *Operator) pgDump(ctx context.Context, w io.Writer) error {
	cmd := exec.CommandContext(ctx, "pg_dump", "--no-owner", "--dbname", o.databaseURL)
	cmd.Stdout = w
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pg_dump failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// CleanOldBackups removes artifacts whose modification time is older than
// now minus retentionDays. It returns the number of files removed.
func (o *Operator) CleanOldBackups(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("invalid retention: %d days", retentionDays)
	}

	entries, err := os.ReadDir(o.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read backup directory %s: %w", o.dir, err)
	}

	cutoff := o.now().AddDate(0, 0, -retentionDays)
	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), artifactSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			o.logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to stat backup artifact")
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(o.dir, entry.Name())); err != nil {
			o.logger.Warn().Err(err).Str("file", entry.Name()).Msg("Failed to remove expired backup")
			continue
		}
		removed++
		o.logger.Info().
			Str("action", "backup_expired").
			Str("file", entry.Name()).
			Time("mod_time", info.ModTime()).
			Msg("Removed expired backup artifact")
	}
	return removed, nil
}
