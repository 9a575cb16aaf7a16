package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"cargopool/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	archivalJob *ConsolidationArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	archiveHandler commands.ArchiveConsolidationsCommandHandler,
	archivalSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		archivalJob: NewConsolidationArchivalJob(archiveHandler, archivalSchedule, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start consolidation archival job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archivalJob.Stop()
}
