package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle returns the order's deliveries, oldest first. Deliveries created in the
// same microsecond are ordered by id.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]*delivery.Delivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []deliveryRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			carrier_id,
			status,
			created_at
		FROM deliveries
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Raw()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(rows))
	for _, row := range rows {
		d, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

type GetDeliveryStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryStatusQueryHandler(db *gorm.DB) GetDeliveryStatusQueryHandler {
	return GetDeliveryStatusQueryHandler{db: db}
}

// Handle returns the raw status label of the most recent delivery, "" when the
// order has none. Of deliveries created at the same instant the one listed first
// by ListDeliveriesQueryHandler wins, as with delivery.Latest.
func (h GetDeliveryStatusQueryHandler) Handle(ctx context.Context, query GetDeliveryStatusQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var statuses []string
	if err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM deliveries
		WHERE order_id = ?
		ORDER BY created_at DESC, id ASC
		LIMIT 1
	`, query.OrderID().Raw()).Scan(&statuses).Error; err != nil {
		return "", err
	}

	if len(statuses) == 0 {
		return "", nil
	}
	return statuses[0], nil
}
