package commands

import (
	"context"
)

type DeleteLineItemCommandHandler struct {
	uowFactory LineItemUoWFactory
}

func NewDeleteLineItemCommandHandler(uowFactory LineItemUoWFactory) DeleteLineItemCommandHandler {
	return DeleteLineItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the line item. A missing item yields errs.ObjectNotFoundError.
func (h DeleteLineItemCommandHandler) Handle(ctx context.Context, cmd DeleteLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineItemRepository().Delete(ctx, cmd.LineItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
