package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
)

type LineItemRepository interface {
	Add(ctx context.Context, item *lineitem.LineItem) error

	// Get returns the line item or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*lineitem.LineItem, error)

	// Delete removes the line item. Deleting a missing item returns an
	// errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*lineitem.LineItem, error)
}
