package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"vehicle-rental-backend/internal/jobs"
	"vehicle-rental-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler. A job
// whose schedule does not parse is logged and skipped.
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	// Discard idle sessions
	_, err := s.cron.AddFunc(cfg.SweepExpiredSessions, s.jobs.SweepExpiredSessions)
	if err != nil {
		logger.Error("Failed to register SweepExpiredSessions job", "schedule", cfg.SweepExpiredSessions, "error", err)
	}

	// Log live session count
	_, err = s.cron.AddFunc(cfg.ReportSessionStats, s.jobs.ReportSessionStats)
	if err != nil {
		logger.Error("Failed to register ReportSessionStats job", "schedule", cfg.ReportSessionStats, "error", err)
	}

	logger.Info("Cron jobs registered", "count", len(s.cron.Entries()))
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// JobCount returns the number of registered jobs
func (s *Scheduler) JobCount() int {
	return len(s.cron.Entries())
}
