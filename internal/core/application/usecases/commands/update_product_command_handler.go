package commands

import (
	"context"
)

// UpdateProductCommandHandler overwrites the mutable fields of a stored
// catalog product.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the new field values and saves the
// updated aggregate inside one transaction.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	aggregate.ChangeDescription(cmd.Description())
	aggregate.ChangeCategory(cmd.Category())
	if err = aggregate.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	if err = aggregate.ChangeQuantity(cmd.Quantity()); err != nil {
		return err
	}
	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
