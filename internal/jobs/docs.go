// Package jobs runs the scheduled background work of the fulfillment service on
// github.com/robfig/cron/v3 schedules with a seconds field.
//
// # Available Jobs
//
// 1. DeliveryStatusRefreshJob - re-reads deliveries and their aggregate status for every open session
// 2. OversellAuditJob - logs activated orders whose line items ask for more than is in stock
// 3. SessionEvictionJob - closes order sessions left idle longer than the configured TTL
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, findOversoldHandler, jobs.Schedules{
//		StatusRefresh:   "*/30 * * * * *",
//		OversellAudit:   "0 */15 * * * *",
//		SessionEviction: "0 * * * * *",
//		SessionIdleTTL:  30 * time.Minute,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. A job that fails to start
// stops the jobs started before it.
package jobs
