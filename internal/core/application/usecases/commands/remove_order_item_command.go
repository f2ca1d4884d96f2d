package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to remove one item of an
// order, addressed by name. When several items share the name, the first
// occurrence is removed. Removing the last item is allowed and leaves an
// order with a zero total.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemName string

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an order item.
func NewRemoveOrderItemCommand(orderID kernel.UUID, itemName string) (RemoveOrderItemCommand, error) {
	command := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemName(itemName),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemName returns the name addressing the item to remove.
func (c RemoveOrderItemCommand) ItemName() string {
	return c.itemName
}

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}
