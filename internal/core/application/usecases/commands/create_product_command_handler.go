package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/product"
)

// CreateProductCommandHandler publishes a new product to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product publication.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the product in "available" status and persists it inside a
// transaction.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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
	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.MerchantID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.Price(),
		cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
