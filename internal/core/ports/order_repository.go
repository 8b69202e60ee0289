// Package ports defines the contracts between the fulfillment core and its adapters:
// repositories for persisted records and the gateway through which the
// orchestrator reaches the external data operations.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository reads and seeds order snapshots. Orders are owned by the
// order system; fulfillment never changes them once stored.
type OrderRepository interface {
	// Add persists a new order snapshot.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
