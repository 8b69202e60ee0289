package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OversoldOrderFinder is satisfied by queries.FindOversoldOrdersQueryHandler.
type OversoldOrderFinder interface {
	Handle(ctx context.Context, query queries.FindOversoldOrdersQuery) ([]kernel.UUID, error)
}

// OversellAuditJob reports activated orders that cannot be served from stock.
type OversellAuditJob struct {
	finder   OversoldOrderFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOversellAuditJob(finder OversoldOrderFinder, schedule string, logger *slog.Logger) *OversellAuditJob {
	return &OversellAuditJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "oversell_audit_job"),
	}
}

// Run logs one warning per oversold order.
func (j *OversellAuditJob) Run(ctx context.Context) ([]kernel.UUID, error) {
	oversold, err := j.finder.Handle(ctx, queries.NewFindOversoldOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Oversell audit failed", "error", err)
		return nil, err
	}

	for _, id := range oversold {
		j.logger.WarnContext(ctx, "Order oversells stock", "order_id", id.String())
	}
	return oversold, nil
}

func (j *OversellAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Oversell audit job started", "schedule", j.schedule)
	return nil
}

func (j *OversellAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Oversell audit job stopped")
}
