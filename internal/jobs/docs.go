// Package jobs provides scheduled background tasks for the shipper client.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the client needs.
//
// # Available Jobs
//
// 1. BoardRefreshJob - Periodically reloads the order board from the remote
// order service, keeping the partitions fresh between user-triggered
// refreshes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshBoardHandler, sessions, "*/30 * * * * *", logger)
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
// The refresh schedule is a cron expression with a seconds field, taken from
// configuration. Refreshing too aggressively only wastes upstream capacity;
// the board also refreshes on demand via the API.
//
// # Error Handling
//
// A missing session is an expected idle state, not an error. Everything else
// inside a tick is logged and never stops the schedule.
package jobs
