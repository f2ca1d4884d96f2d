// Package jobs provides scheduled background tasks for the store backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. SessionCleanupJob - Runs every minute to delete session tokens whose expiry has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeExpiredSessionsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Cleanup failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
