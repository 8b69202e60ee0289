package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned by Validate for an Order built without RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Order is a read-only snapshot of a sales order as seen by fulfillment.
//
// The order system owns the record; fulfillment never changes it. A new snapshot
// is taken every time the order system reports a change, so Order has no mutators.
//
// The destination may be unset: an order without a shipping country cannot be
// matched against carrier offers until the country is filled in.
type Order struct {
	id          kernel.UUID
	destination kernel.Country
	status      Status
	guard       guard.ConstructorGuard
}

// RestoreOrder rebuilds an order snapshot from the order store.
//
// Example:
//
//	o, err := order.RestoreOrder(id, kernel.MustNewCountry("FR"), order.Activated)
//	if err != nil {
//	    return err
//	}
//	o.Status().IsActivated() // true
func RestoreOrder(id kernel.UUID, destination kernel.Country, status Status) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:          id,
		destination: destination,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate rejects nil orders and struct literals.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Destination returns the shipping country; IsZero() on the result means "not set".
func (o *Order) Destination() kernel.Country {
	return o.destination
}

func (o *Order) Status() Status {
	return o.status
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}
