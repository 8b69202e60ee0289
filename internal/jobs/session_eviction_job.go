package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// IdleSessionEvicter is satisfied by fulfillment.Registry.
type IdleSessionEvicter interface {
	EvictIdle(ctx context.Context, cutoff time.Time) int
}

// SessionEvictionJob closes order sessions nobody has used for idleTTL, so the
// refresh job and the change listener only work for orders still being handled.
type SessionEvictionJob struct {
	sessions IdleSessionEvicter
	idleTTL  time.Duration
	now      func() time.Time
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionEvictionJob(
	sessions IdleSessionEvicter,
	idleTTL time.Duration,
	schedule string,
	logger *slog.Logger,
) *SessionEvictionJob {
	return &SessionEvictionJob{
		sessions: sessions,
		idleTTL:  idleTTL,
		now:      time.Now,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_eviction_job"),
	}
}

// Run evicts once and returns the number of sessions closed.
func (j *SessionEvictionJob) Run(ctx context.Context) int {
	evicted := j.sessions.EvictIdle(ctx, j.now().Add(-j.idleTTL))
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Idle sessions evicted", "count", evicted)
	}
	return evicted
}

func (j *SessionEvictionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started",
		"schedule", j.schedule, "idle_ttl", j.idleTTL.String())
	return nil
}

func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}
