package lineitem

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via RestoreLineItem constructor")

// LineItem is a read-only snapshot of an order line.
type LineItem struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    *int
	unitPrice   decimal.NullDecimal
	stockOnHand *int
	guard       guard.ConstructorGuard
}

// RestoreLineItem rebuilds a line item from the order store. Negative quantities
// are rejected; a negative stock snapshot is accepted since stock can be
// over-committed upstream.
func RestoreLineItem(
	id, orderID, productID kernel.UUID,
	productName string,
	quantity *int,
	unitPrice decimal.NullDecimal,
	stockOnHand *int,
) (*LineItem, error) {
	var quantityErr error
	if quantity != nil && *quantity < 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", *quantity, 0, "unbounded")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
		quantityErr,
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:          id,
		orderID:     orderID,
		productID:   productID,
		productName: strings.TrimSpace(productName),
		quantity:    copyInt(quantity),
		unitPrice:   unitPrice,
		stockOnHand: copyInt(stockOnHand),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li *LineItem) ID() kernel.UUID {
	return li.id
}

func (li *LineItem) OrderID() kernel.UUID {
	return li.orderID
}

func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

func (li *LineItem) ProductName() string {
	return li.productName
}

// Quantity returns the requested quantity and whether it is set.
func (li *LineItem) Quantity() (int, bool) {
	if li.quantity == nil {
		return 0, false
	}
	return *li.quantity, true
}

// UnitPrice returns the unit price and whether it is set.
func (li *LineItem) UnitPrice() (decimal.Decimal, bool) {
	return li.unitPrice.Decimal, li.unitPrice.Valid
}

// StockOnHand returns the stock snapshot and whether it is set.
func (li *LineItem) StockOnHand() (int, bool) {
	if li.stockOnHand == nil {
		return 0, false
	}
	return *li.stockOnHand, true
}

// TotalPrice is unit price times quantity, or zero when either one is missing.
func (li *LineItem) TotalPrice() decimal.Decimal {
	qty, ok := li.Quantity()
	if !ok || !li.unitPrice.Valid {
		return decimal.Zero
	}
	return li.unitPrice.Decimal.Mul(decimal.NewFromInt(int64(qty)))
}
