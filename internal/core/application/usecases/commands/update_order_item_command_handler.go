package commands

import (
	"context"
)

// UpdateOrderItemCommandHandler replaces one item of a stored order and
// persists the re-derived total.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemCommandHandler creates a handler for item update operations.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces the addressed item and saves the updated
// aggregate. Returns order.ErrItemNotFound when no item carries the
// addressed name.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) error {
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

	if err = aggregate.UpdateItem(cmd.OldItemName(), cmd.Item()); err != nil {
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
