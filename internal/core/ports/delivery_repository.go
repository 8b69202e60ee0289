package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// ListByOrder returns the order's deliveries, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)
}
