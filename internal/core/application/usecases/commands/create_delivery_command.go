package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand asks for a new Pending delivery of an order with one carrier.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(orderID, carrierID)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
//
//	d, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(orderID, carrierID kernel.UUID) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateDeliveryCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
