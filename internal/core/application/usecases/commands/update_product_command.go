package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to overwrite a catalog product's
// mutable fields. The owning merchant cannot be changed.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Price
	quantity    int
	status      product.Status

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to overwrite a product's fields.
// The status is given by its wire name ("available", "unavailable" or
// "limited").
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	quantity int,
	status string,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
		command.setQuantity(quantity),
		command.setStatus(status),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to overwrite.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Category returns the new category label.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Price returns the new validated unit price.
func (c UpdateProductCommand) Price() kernel.Price {
	return c.price
}

// Quantity returns the new stocked quantity.
func (c UpdateProductCommand) Quantity() int {
	return c.quantity
}

// Status returns the new availability status.
func (c UpdateProductCommand) Status() product.Status {
	return c.status
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	validPrice, err := kernel.PriceFromFloat(price)
	if err != nil {
		return err
	}

	c.price = validPrice
	return nil
}

func (c *UpdateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateProductCommand) setStatus(status string) error {
	validStatus, err := product.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = validStatus
	return nil
}
