// Package jobs provides scheduled background tasks for the order completion
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. CompletionSweepJob - Periodically collects all submitted orders and runs
// the completion workflow over them, so orders that became eligible since the
// last sweep get notified and finished without an explicit API call.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(completionSweepJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job never treats business outcomes as errors: a sweep where no
// order qualified is a normal run. Only collaborator failures are logged.
package jobs
