package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrFindOversoldOrdersQueryIsNotConstructed = errors.New(
	"FindOversoldOrdersQuery must be created via NewFindOversoldOrdersQuery constructor",
)

// FindOversoldOrdersQuery looks for activated orders that ask for more of a
// product than is on hand.
type FindOversoldOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewFindOversoldOrdersQuery() FindOversoldOrdersQuery {
	return FindOversoldOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q FindOversoldOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindOversoldOrdersQueryIsNotConstructed)
}

type FindOversoldOrdersQueryHandler struct {
	db         *gorm.DB
	reconciler services.StockReconciler
}

func NewFindOversoldOrdersQueryHandler(db *gorm.DB) FindOversoldOrdersQueryHandler {
	return FindOversoldOrdersQueryHandler{db: db, reconciler: services.NewStockReconciler()}
}

// Handle returns the ids of the oversold orders, ordered by id.
func (h FindOversoldOrdersQueryHandler) Handle(ctx context.Context, query FindOversoldOrdersQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []lineItemRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.order_id,
			li.product_id,
			li.product_name,
			li.quantity,
			li.unit_price,
			li.stock_on_hand
		FROM line_items li
		JOIN orders o ON o.id = li.order_id
		WHERE o.status = ?
		ORDER BY li.order_id, li.product_name, li.id
	`, order.Activated.String()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	oversold := make([]kernel.UUID, 0)
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].OrderID == rows[start].OrderID {
			end++
		}

		items, err := lineItemsFromRows(rows[start:end])
		if err != nil {
			return nil, err
		}
		if h.reconciler.IsOversold(items) {
			oversold = append(oversold, items[0].OrderID())
		}
		start = end
	}
	return oversold, nil
}
