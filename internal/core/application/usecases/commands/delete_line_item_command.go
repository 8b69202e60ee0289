package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteLineItemCommandIsNotConstructed = errors.New(
	"DeleteLineItemCommand must be created via NewDeleteLineItemCommand constructor",
)

// DeleteLineItemCommand removes one line item from its order.
type DeleteLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteLineItemCommand(lineItemID kernel.UUID) (DeleteLineItemCommand, error) {
	if err := lineItemID.Validate(); err != nil {
		return DeleteLineItemCommand{}, err
	}

	return DeleteLineItemCommand{
		lineItemID: lineItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLineItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineItemCommandIsNotConstructed)
}

func (c DeleteLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}
