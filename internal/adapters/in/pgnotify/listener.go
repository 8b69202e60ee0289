// Package pgnotify turns PostgreSQL change notifications into fulfillment
// session updates. The triggers installed by postgres.Migrate publish the id of
// the changed order on postgres.OrderChangedChannel and
// postgres.LineItemsChangedChannel.
package pgnotify

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

const (
	DefaultPingInterval         = 90 * time.Second
	defaultMinReconnectInterval = 10 * time.Second
	defaultMaxReconnectInterval = time.Minute
)

// Notifier receives the decoded notifications. fulfillment.Registry implements it.
type Notifier interface {
	NotifyOrderChanged(ctx context.Context, orderID kernel.UUID) error
	NotifyLineItemsChanged(ctx context.Context, orderID kernel.UUID) error
	Resync(ctx context.Context) error
}

type Listener struct {
	dsn          string
	notifier     Notifier
	logger       *slog.Logger
	pingInterval time.Duration
}

func NewListener(dsn string, notifier Notifier, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{
		dsn:          dsn,
		notifier:     notifier,
		logger:       logger.With("component", "pgnotify.listener"),
		pingInterval: DefaultPingInterval,
	}
}

// Run listens until ctx is done. Only a failure to subscribe is returned;
// connection losses are retried by pq and followed by a Resync.
func (l *Listener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, defaultMinReconnectInterval, defaultMaxReconnectInterval, l.reportEvent)
	defer func() {
		_ = listener.Close()
	}()

	for _, channel := range []string{postgres.OrderChangedChannel, postgres.LineItemsChangedChannel} {
		if err := listener.Listen(channel); err != nil {
			return err
		}
	}

	l.logger.InfoContext(ctx, "listening for changes")
	l.loop(ctx, listener.Notify, listener.Ping)
	return nil
}

func (l *Listener) reportEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
		l.logger.Warn("notification connection lost", "error", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("notification connection restored")
	}
}

func (l *Listener) loop(ctx context.Context, notifications <-chan *pq.Notification, ping func() error) {
	ticker := time.NewTicker(l.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			l.handle(ctx, n)
		case <-ticker.C:
			if err := ping(); err != nil {
				l.logger.WarnContext(ctx, "notification connection ping failed", "error", err)
			}
		}
	}
}

// handle dispatches one notification. pq delivers nil after a reconnect, when
// notifications may have been missed.
func (l *Listener) handle(ctx context.Context, n *pq.Notification) {
	if n == nil {
		if err := l.notifier.Resync(ctx); err != nil {
			l.logger.ErrorContext(ctx, "resync after reconnect failed", "error", err)
		}
		return
	}

	orderID, err := kernel.UUIDFromString(n.Extra)
	if err != nil {
		l.logger.WarnContext(ctx, "ignoring notification with bad payload",
			"channel", n.Channel, "payload", n.Extra, "error", err)
		return
	}

	switch n.Channel {
	case postgres.OrderChangedChannel:
		err = l.notifier.NotifyOrderChanged(ctx, orderID)
	case postgres.LineItemsChangedChannel:
		err = l.notifier.NotifyLineItemsChanged(ctx, orderID)
	default:
		l.logger.WarnContext(ctx, "ignoring notification on unknown channel", "channel", n.Channel)
		return
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "applying change notification failed",
			"channel", n.Channel, "order_id", orderID.String(), "error", err)
	}
}
