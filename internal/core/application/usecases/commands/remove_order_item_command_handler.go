package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler removes one item of a stored order and
// persists the re-derived total.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal operations.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, removes the addressed item and saves the updated
// aggregate. Returns order.ErrItemNotFound when no item carries the
// addressed name.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveItem(cmd.ItemName()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
