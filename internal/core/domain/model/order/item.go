package order

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an Item that was
// not created through the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a named, priced line entry within an order. It is an immutable value
// object: mutating a line means replacing it with a new Item.
//
// The name addresses the item for update and removal operations, so it must be
// non-empty. The price must be a properly constructed non-negative Price.
//
// Example:
//
//	price, _ := kernel.PriceFromFloat(9.99)
//	item, err := order.NewItem("espresso beans", price)
//	if err != nil {
//	    // handle validation error
//	}
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item.
// The name must be non-empty and the price must be a constructed Price.
func NewItem(name string, price kernel.Price) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Name returns the item's display name, also used as its mutation address.
func (i Item) Name() string {
	return i.name
}

// Price returns the item's price.
func (i Item) Price() kernel.Price {
	return i.price
}

// IsEqual compares two items by name and price.
func (i Item) IsEqual(other Item) bool {
	return i.name == other.name && i.price.IsEqual(other.price)
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
