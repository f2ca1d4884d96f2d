package product

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrNameIsRequired is returned when attempting to create or rename a
	// product with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product represents a catalog entry owned by a merchant. It is the aggregate
// root for catalog management.
//
// Invariants:
//   - Valid product and merchant identifiers
//   - Non-empty name
//   - Non-negative price and quantity
//   - Status is one of the declared availabilities
//
// Description and category are free-form and may be empty.
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// merchantID references the owning merchant
	merchantID kernel.UUID
	// name is the display name shown in the catalog
	name string
	// description is optional free-form marketing text
	description string
	// category groups products for catalog filtering
	category string
	// price is the unit price
	price kernel.Price
	// quantity is the stock on hand
	quantity int
	// status is the catalog availability
	status Status
	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new catalog product in Available status.
// Returns a validation error if any parameter violates the invariants;
// multiple violations are aggregated.
func NewProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Price,
	quantity int,
) (*Product, error) {
	product := &Product{
		description:   description,
		category:      category,
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setMerchantID(merchantID),
		product.setName(name),
		product.setPrice(price),
		product.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence, including its stored
// availability status.
func RestoreProduct(
	id kernel.UUID,
	merchantID kernel.UUID,
	name string,
	description string,
	category string,
	price kernel.Price,
	quantity int,
	status Status,
) (*Product, error) {
	product, err := NewProduct(id, merchantID, name, description, category, price, quantity)
	if err != nil {
		return nil, err
	}

	if err = product.setStatus(status); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// MerchantID returns the owning merchant's identifier.
func (p *Product) MerchantID() kernel.UUID {
	return p.merchantID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional marketing text.
func (p *Product) Description() string {
	return p.description
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// Price returns the unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}

// Quantity returns the stock on hand.
func (p *Product) Quantity() int {
	return p.quantity
}

// Status returns the catalog availability.
func (p *Product) Status() Status {
	return p.status
}

// Rename changes the display name. The new name must be non-empty.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the marketing text. An empty value clears it.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// ChangeCategory moves the product to another catalog category.
// An empty value removes the category.
func (p *Product) ChangeCategory(category string) {
	p.category = category
}

// ChangePrice sets a new unit price. The price must be a constructed Price.
func (p *Product) ChangePrice(price kernel.Price) error {
	return p.setPrice(price)
}

// ChangeQuantity sets the stock on hand. Quantity must be non-negative.
func (p *Product) ChangeQuantity(quantity int) error {
	return p.setQuantity(quantity)
}

// ChangeStatus switches the catalog availability.
func (p *Product) ChangeStatus(status Status) error {
	return p.setStatus(status)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("merchantId", err)
	}
	p.merchantID = merchantID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
