package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must not be negative")
)

// CreateProductCommand represents a request to publish a new catalog product.
// New products always start in "available" status.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	merchantID  kernel.UUID
	name        string
	description string
	category    string
	price       kernel.Price
	quantity    int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to publish a catalog product.
// Validates identifiers, requires a name, and rejects negative prices and
// quantities.
func NewCreateProductCommand(
	productID kernel.UUID,
	merchantID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	quantity int,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setMerchantID(merchantID),
		command.setName(name),
		command.setPrice(price),
		command.setQuantity(quantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// MerchantID returns the identifier of the owning merchant.
func (c CreateProductCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-form product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the catalog category label.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Price returns the validated unit price.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

// Quantity returns the stocked quantity.
func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	validPrice, err := kernel.PriceFromFloat(price)
	if err != nil {
		return err
	}

	c.price = validPrice
	return nil
}

func (c *CreateProductCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
