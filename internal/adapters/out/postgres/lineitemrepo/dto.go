// Package lineitemrepo maps order line items to the line_items table.
package lineitemrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemDTO is a row of line_items. StockOnHand is the product's stock as
// copied by the order system when the line was last written.
type LineItemDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductName string              `gorm:"size:255"`
	Quantity    *int
	UnitPrice   decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	StockOnHand *int
}

func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(item *lineitem.LineItem) LineItemDTO {
	dto := LineItemDTO{
		ID:          item.ID().Raw(),
		OrderID:     item.OrderID().Raw(),
		ProductID:   item.ProductID().Raw(),
		ProductName: item.ProductName(),
	}
	if qty, ok := item.Quantity(); ok {
		dto.Quantity = &qty
	}
	if price, ok := item.UnitPrice(); ok {
		dto.UnitPrice = decimal.NewNullDecimal(price)
	}
	if stock, ok := item.StockOnHand(); ok {
		dto.StockOnHand = &stock
	}
	return dto
}

// toDomain rebuilds a line item from its row.
func toDomain(dto LineItemDTO) (*lineitem.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return lineitem.RestoreLineItem(id, orderID, productID, dto.ProductName, dto.Quantity, dto.UnitPrice, dto.StockOnHand)
}
