package jobs

import (
	"context"

	"vehicle-rental-backend/internal/logger"
)

// SweepExpiredSessions discards sessions, and their agencies, that have been
// idle longer than the session TTL.
func (jr *JobRunner) SweepExpiredSessions() {
	jr.runWithRecovery("SweepExpiredSessions", func() {
		ctx := context.Background()

		removed, err := jr.sessions.SweepExpired(ctx, jr.now())
		if err != nil {
			logger.Error("Failed to sweep expired sessions", "error", err)
			return
		}
		logger.Info("Swept expired sessions", "count", removed)
	})
}

// ReportSessionStats logs the number of live sessions.
func (jr *JobRunner) ReportSessionStats() {
	jr.runWithRecovery("ReportSessionStats", func() {
		count, err := jr.sessions.Count()
		if err != nil {
			logger.Error("Failed to count sessions", "error", err)
			return
		}
		logger.Info("Session statistics", "active_sessions", count)
	})
}
