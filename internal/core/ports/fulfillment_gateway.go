package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
)

// FulfillmentGateway is every external data operation the delivery orchestrator
// performs. Each call may block; implementations must honor ctx cancellation.
type FulfillmentGateway interface {
	// LookupCarrierOffers returns the offers for a destination, possibly incomplete ones.
	LookupCarrierOffers(ctx context.Context, destination kernel.Country) ([]carrier.Offer, error)

	// CreateDelivery creates a Pending delivery of the order with the carrier.
	CreateDelivery(ctx context.Context, orderID, carrierID kernel.UUID) (*delivery.Delivery, error)

	ListDeliveries(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// AggregateDeliveryStatus returns the raw status label of the order's most
	// recent delivery, "" when the order has none.
	AggregateDeliveryStatus(ctx context.Context, orderID kernel.UUID) (string, error)

	ListLineItems(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error)

	DeleteLineItem(ctx context.Context, lineItemID kernel.UUID) error
}

// OrderSource supplies fresh order snapshots when the order system reports a change.
type OrderSource interface {
	GetOrder(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
}
