// Package jobs provides scheduled background tasks for the pharmacy service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AssignmentSweepJob - Periodically opens delivery assignments for orders
// that went out for delivery but have no assignment yet, feeding the pool
// agents claim from.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, createAssignmentHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep skips expected races: an order another sweep or request already
// covered reports a conflict or transition error, which is not logged.
package jobs
