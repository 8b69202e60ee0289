// Package orderrepo maps order snapshots to the orders table.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. ShippingCountry is "" when the order
// has no destination yet.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShippingCountry string    `gorm:"size:2;index"`
	Status          string    `gorm:"size:64;not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Raw(),
		ShippingCountry: aggregate.Destination().String(),
		Status:          aggregate.Status().String(),
	}
}

// toDomain rebuilds an order from its row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var destination kernel.Country
	if dto.ShippingCountry != "" {
		destination, err = kernel.NewCountry(dto.ShippingCountry)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, destination, order.Status(dto.Status))
}
