// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order subsystem.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every second to deliver queued order status notifications to customers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayNotificationsHandler, logger)
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
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps push notifications close to real time
// without coupling status changes to push delivery.
//
// # Error Handling
//
// - The relay job ignores the empty-queue case, which is the normal idle state
// - Delivery failures for individual messages are logged inside the handler and never abort the batch
// - Failed job starts will stop any already running jobs
package jobs
