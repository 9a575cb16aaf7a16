package jobs

import (
	"context"
	"log/slog"
	"time"

	"cargopool/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ConsolidationArchivalJob retires delivered consolidations once their
// retention window has elapsed. Archival is idempotent, so a failed tick is
// simply retried on the next one.
type ConsolidationArchivalJob struct {
	handler   commands.ArchiveConsolidationsCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewConsolidationArchivalJob creates a new archival job. The schedule is a
// six-field cron expression; retention is how long a delivered consolidation
// stays unarchived after its shipping date.
func NewConsolidationArchivalJob(
	handler commands.ArchiveConsolidationsCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ConsolidationArchivalJob {
	return &ConsolidationArchivalJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "consolidation_archival_job"),
	}
}

// Start begins the archival job on its configured schedule.
func (j *ConsolidationArchivalJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewArchiveConsolidationsCommand(time.Now().UTC().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Consolidation archival command rejected", "error", err)
			return
		}

		archived, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Consolidation archival job failed", "error", err)
			return
		}
		if archived > 0 {
			j.logger.InfoContext(ctx, "Archived delivered consolidations", "count", archived)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Consolidation archival job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the archival job.
func (j *ConsolidationArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Consolidation archival job stopped")
}
