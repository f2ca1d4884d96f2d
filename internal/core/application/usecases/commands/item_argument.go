package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// ErrItemsAreRequired is returned when a command expecting order items
// receives an empty list.
var ErrItemsAreRequired = errors.New("at least one item is required")

// ItemArgument carries the raw item fields of an order command before they
// are validated into domain items.
type ItemArgument struct {
	Name  string
	Price float64
}

// itemsFromArguments converts raw item arguments into validated domain items.
// Validation failures across all arguments are aggregated into one error.
func itemsFromArguments(arguments []ItemArgument) ([]order.Item, error) {
	items := make([]order.Item, 0, len(arguments))

	var errs []error
	for _, argument := range arguments {
		price, err := kernel.PriceFromFloat(argument.Price)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		item, err := order.NewItem(argument.Name, price)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		items = append(items, item)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return items, nil
}
