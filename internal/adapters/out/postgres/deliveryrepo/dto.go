// Package deliveryrepo maps deliveries to the deliveries table.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_deliveries_order_created,priority:1"`
	CarrierID uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"size:64;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_deliveries_order_created,priority:2"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:        aggregate.ID().Raw(),
		OrderID:   aggregate.OrderID().Raw(),
		CarrierID: aggregate.CarrierID().Raw(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain rebuilds a delivery from its row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, carrierID, delivery.Status(dto.Status), dto.CreatedAt)
}
