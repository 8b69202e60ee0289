package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/fulfillment"

	"github.com/robfig/cron/v3"
)

// SessionSet is satisfied by fulfillment.Registry.
type SessionSet interface {
	Each(fn func(*fulfillment.Orchestrator))
}

// DeliveryStatusRefreshJob keeps the delivery badge of open sessions current
// between change notifications, which only cover orders and line items.
type DeliveryStatusRefreshJob struct {
	sessions SessionSet
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryStatusRefreshJob(sessions SessionSet, schedule string, logger *slog.Logger) *DeliveryStatusRefreshJob {
	return &DeliveryStatusRefreshJob{
		sessions: sessions,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_status_refresh_job"),
	}
}

// Run refreshes every open session once and returns the number of failures.
func (j *DeliveryStatusRefreshJob) Run(ctx context.Context) int {
	var failed int
	j.sessions.Each(func(orch *fulfillment.Orchestrator) {
		if err := orch.RefreshDeliveries(ctx); err != nil {
			failed++
			j.logger.WarnContext(ctx, "Delivery status refresh failed",
				"order_id", orch.OrderID().String(), "error", err)
		}
	})
	return failed
}

func (j *DeliveryStatusRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery status refresh job started", "schedule", j.schedule)
	return nil
}

func (j *DeliveryStatusRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery status refresh job stopped")
}
