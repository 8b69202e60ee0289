package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scan targets of the raw SQL reads. Column names follow gorm's naming of the
// fields.

type offerRow struct {
	CarrierID   uuid.UUID
	CarrierName *string
	Price       decimal.NullDecimal
	TransitDays *int
	Country     string
}

func (r offerRow) toDomain() (carrier.Offer, error) {
	carrierID, err := kernel.UUIDFromBytes(r.CarrierID[:])
	if err != nil {
		return carrier.Offer{}, err
	}
	country, err := kernel.NewCountry(r.Country)
	if err != nil {
		return carrier.Offer{}, err
	}
	var name string
	if r.CarrierName != nil {
		name = *r.CarrierName
	}
	return carrier.RestoreOffer(carrierID, name, r.Price, r.TransitDays, country)
}

type deliveryRow struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	CarrierID uuid.UUID
	Status    string
	CreatedAt time.Time
}

func (r deliveryRow) toDomain() (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(r.CarrierID[:])
	if err != nil {
		return nil, err
	}
	return delivery.RestoreDelivery(id, orderID, carrierID, delivery.Status(r.Status), r.CreatedAt)
}

type orderRow struct {
	ID              uuid.UUID
	ShippingCountry string
	Status          string
}

func (r orderRow) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	var destination kernel.Country
	if r.ShippingCountry != "" {
		if destination, err = kernel.NewCountry(r.ShippingCountry); err != nil {
			return nil, err
		}
	}
	return order.RestoreOrder(id, destination, order.Status(r.Status))
}

type lineItemRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    *int
	UnitPrice   decimal.NullDecimal
	StockOnHand *int
}

func (r lineItemRow) toDomain() (*lineitem.LineItem, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return nil, err
	}
	return lineitem.RestoreLineItem(id, orderID, productID, r.ProductName, r.Quantity, r.UnitPrice, r.StockOnHand)
}
