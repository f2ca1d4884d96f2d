package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
		"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
)

// UpdateOrderItemCommand represents a request to replace one item of an
// order, addressed by its current name. When several items share the name,
// the first occurrence is replaced.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	oldItemName string
	item        order.Item

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to replace an order item.
// Validates the order ID, the addressed item name and the replacement item.
func NewUpdateOrderItemCommand(
	orderID kernel.UUID,
	oldItemName string,
	item ItemArgument,
) (UpdateOrderItemCommand, error) {
	command := UpdateOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOldItemName(oldItemName),
		command.setItem(item),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OldItemName returns the name addressing the item to replace.
func (c UpdateOrderItemCommand) OldItemName() string {
	return c.oldItemName
}

// Item returns the validated replacement item.
func (c UpdateOrderItemCommand) Item() order.Item {
	return c.item
}

func (c *UpdateOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemCommand) setOldItemName(oldItemName string) error {
	if oldItemName == "" {
		return ErrItemNameIsRequired
	}

	c.oldItemName = oldItemName
	return nil
}

func (c *UpdateOrderItemCommand) setItem(argument ItemArgument) error {
	items, err := itemsFromArguments([]ItemArgument{argument})
	if err != nil {
		return err
	}

	c.item = items[0]
	return nil
}
