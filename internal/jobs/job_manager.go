// Package jobs provides the scheduled background tasks of the rental
// service, implemented with github.com/robfig/cron/v3 and coordinated
// through JobManager.
package jobs

import (
	"fmt"
	"log/slog"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueReminderJob *OverdueReminderJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	overdueHandler queries.GetOverdueRentalsQueryHandler,
	renderer ports.MessageRenderer,
	sender ports.MessageSender,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueReminderJob: NewOverdueReminderJob(overdueHandler, renderer, sender, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueReminderJob.Stop()
}
