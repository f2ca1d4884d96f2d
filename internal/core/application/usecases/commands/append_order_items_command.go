package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var ErrAppendOrderItemsCommandIsNotConstructed = errors.New(
	"AppendOrderItemsCommand must be created via NewAppendOrderItemsCommand constructor",
)

// AppendOrderItemsCommand represents a request to append items to an
// existing order. The order total is re-derived after the append.
type AppendOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewAppendOrderItemsCommand creates a command to append items to an order.
// Validates the order ID and requires at least one well-formed item.
func NewAppendOrderItemsCommand(
	orderID kernel.UUID,
	items []ItemArgument,
) (AppendOrderItemsCommand, error) {
	command := AppendOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
	); err != nil {
		return AppendOrderItemsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrAppendOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AppendOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the validated items to append.
func (c AppendOrderItemsCommand) Items() []order.Item {
	return c.items
}

func (c *AppendOrderItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendOrderItemsCommand) setItems(arguments []ItemArgument) error {
	if len(arguments) == 0 {
		return ErrItemsAreRequired
	}

	items, err := itemsFromArguments(arguments)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}
