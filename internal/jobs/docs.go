// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance that no actor triggers directly.
//
// # Available Jobs
//
// 1. ConsolidationArchivalJob - Periodically archives delivered consolidations
// whose shipping date lies before the retention cutoff.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveHandler, schedule, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The archival job schedule is configured through the cron expression passed
// at construction; the retention window decides how long delivered
// consolidations stay visible before they are archived.
//
// # Error Handling
//
// - Archival failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
