package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipping_country,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Raw()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return rows[0].toDomain()
}

type ListLineItemsQueryHandler struct {
	db *gorm.DB
}

func NewListLineItemsQueryHandler(db *gorm.DB) ListLineItemsQueryHandler {
	return ListLineItemsQueryHandler{db: db}
}

// Handle returns an empty slice for an order without line items, known or not.
func (h ListLineItemsQueryHandler) Handle(
	ctx context.Context,
	query ListLineItemsQuery,
) ([]*lineitem.LineItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []lineItemRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price,
			stock_on_hand
		FROM line_items
		WHERE order_id = ?
		ORDER BY product_name, id
	`, query.OrderID().Raw()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return lineItemsFromRows(rows)
}

func lineItemsFromRows(rows []lineItemRow) ([]*lineitem.LineItem, error) {
	items := make([]*lineitem.LineItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
