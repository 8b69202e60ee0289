package fulfillment

import (
	"context"
	"log/slog"
	"sync"

	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
)

// Monitor feeds one Orchestrator from independent change streams. Order snapshots
// and line-item sets are consumed by separate goroutines, so a slow carrier
// lookup never delays the oversell recomputation.
type Monitor struct {
	orchestrator *Orchestrator
	logger       *slog.Logger
}

func NewMonitor(orchestrator *Orchestrator, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		orchestrator: orchestrator,
		logger: logger.With(
			"component", "fulfillment.monitor",
			"order_id", orchestrator.OrderID().String(),
		),
	}
}

// Run blocks until ctx is done or both channels are closed. Errors from
// individual events are logged and do not stop the monitor.
func (m *Monitor) Run(ctx context.Context, orders <-chan *order.Order, lineItems <-chan []*lineitem.LineItem) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case snapshot, ok := <-orders:
				if !ok {
					return
				}
				if err := m.orchestrator.ObserveOrder(ctx, snapshot); err != nil {
					m.logger.WarnContext(ctx, "order change not applied", "error", err)
				}
			}
		}
	}()

	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case items, ok := <-lineItems:
				if !ok {
					return
				}
				m.orchestrator.ObserveLineItems(items)
			}
		}
	}()

	wg.Wait()
}
