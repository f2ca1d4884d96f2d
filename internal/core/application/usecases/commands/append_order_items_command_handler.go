package commands

import (
	"context"
)

// AppendOrderItemsCommandHandler appends items to a stored order and
// persists the re-derived total.
type AppendOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAppendOrderItemsCommandHandler creates a handler for item append operations.
func NewAppendOrderItemsCommandHandler(uowFactory OrderUoWFactory) AppendOrderItemsCommandHandler {
	return AppendOrderItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, appends the items and saves the updated aggregate.
// The whole read-modify-write cycle runs inside one transaction.
func (h *AppendOrderItemsCommandHandler) Handle(ctx context.Context, cmd AppendOrderItemsCommand) error {
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

	if err = aggregate.AppendItems(cmd.Items()); err != nil {
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
