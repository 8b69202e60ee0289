package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreatedAtIsRequired      = errs.NewValueIsRequiredError("createdAt")
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery is a shipment of one order through one carrier.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	carrierID kernel.UUID
	status    Status
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewDelivery starts a delivery in the Pending status.
func NewDelivery(id, orderID, carrierID kernel.UUID, createdAt time.Time) (*Delivery, error) {
	return RestoreDelivery(id, orderID, carrierID, Pending, createdAt)
}

// RestoreDelivery rebuilds a delivery from storage. Any non-empty status is
// accepted since the carrier system may report values outside the known set.
func RestoreDelivery(
	id, orderID, carrierID kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Delivery, error) {
	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = ErrCreatedAtIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		carrierID.Validate(),
		status.Validate(),
		createdAtErr,
	); err != nil {
		return nil, err
	}

	return &Delivery{
		id:        id,
		orderID:   orderID,
		carrierID: carrierID,
		status:    status,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) CarrierID() kernel.UUID {
	return d.carrierID
}

func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt is always in UTC.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Latest returns the most recently created delivery, or nil for an empty list.
// Deliveries created at the same instant keep list order: the first one wins.
func Latest(deliveries []*Delivery) *Delivery {
	var latest *Delivery
	for _, d := range deliveries {
		if d == nil {
			continue
		}
		if latest == nil || d.createdAt.After(latest.createdAt) {
			latest = d
		}
	}
	return latest
}
