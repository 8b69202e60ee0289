package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Sessions is the part of fulfillment.Registry the jobs work on.
type Sessions interface {
	SessionSet
	IdleSessionEvicter
}

type Schedules struct {
	StatusRefresh   string
	OversellAudit   string
	SessionEviction string
	SessionIdleTTL  time.Duration
}

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	statusRefreshJob   *DeliveryStatusRefreshJob
	oversellAuditJob   *OversellAuditJob
	sessionEvictionJob *SessionEvictionJob
}

func NewJobManager(
	sessions Sessions,
	oversold OversoldOrderFinder,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusRefreshJob:   NewDeliveryStatusRefreshJob(sessions, schedules.StatusRefresh, logger),
		oversellAuditJob:   NewOversellAuditJob(oversold, schedules.OversellAudit, logger),
		sessionEvictionJob: NewSessionEvictionJob(sessions, schedules.SessionIdleTTL, schedules.SessionEviction, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery status refresh job: %w", err)
	}

	if err := jm.oversellAuditJob.Start(); err != nil {
		jm.statusRefreshJob.Stop()
		return fmt.Errorf("failed to start oversell audit job: %w", err)
	}

	if err := jm.sessionEvictionJob.Start(); err != nil {
		jm.oversellAuditJob.Stop()
		jm.statusRefreshJob.Stop()
		return fmt.Errorf("failed to start session eviction job: %w", err)
	}

	return nil
}

// StopAll stops the jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.sessionEvictionJob.Stop()
	jm.oversellAuditJob.Stop()
	jm.statusRefreshJob.Stop()
}
