package jobs

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/logger"
)

// SessionStore is the session registry maintained by the jobs.
type SessionStore interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	Count() (int, error)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	sessions SessionStore
	config   *config.Config
	now      func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(sessions SessionStore, cfg *config.Config) *JobRunner {
	return &JobRunner{
		sessions: sessions,
		config:   cfg,
		now:      time.Now,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SweepExpiredSessions()
	jr.ReportSessionStats()
}
