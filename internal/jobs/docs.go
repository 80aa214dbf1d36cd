// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds and run in UTC.
//
// # Available Jobs
//
// 1. DistributionCloseJob - Runs at 00:00:00 on the first day of every month
// and writes every owner's distribution record of the previous month; on
// January 1 it also closes the previous year.
// 2. PendingReimbursementJob - Runs daily at 08:00 and logs what the business
// still owes each owner for personal outlays.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewDistributionCloseJob(closeHandler, kernel.SystemClock(), logger),
//		jobs.NewPendingReimbursementJob(pendingTotalsHandler, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and retried on the next run; closing a period is
// idempotent per owner. Failed job starts stop any already running jobs.
package jobs
