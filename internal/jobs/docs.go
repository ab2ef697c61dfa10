// Package jobs provides scheduled background tasks for the distribution
// backend, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LowStockAlertJob - periodically logs every lot at or below its reorder
// point so replenishment can be planned before stock runs out.
//
// 2. DeliveryDelayJob - periodically flags en-route trips past their arrival
// estimate as delayed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(lowStockHandler, markDelayedHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Both jobs run every five minutes. Nothing here needs sub-minute
// resolution: the alerts feed humans, and a trip only counts as delayed once
// its estimate is already missed.
package jobs
