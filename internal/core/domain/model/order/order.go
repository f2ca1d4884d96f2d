package order

import (
	"errors"
	"fmt"
	"slices"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemsAreRequired is returned when an order is created or extended with
	// an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order requires at least one item")

	// ErrItemNotFound is returned when an item mutation addresses a name that is
	// not present in the order's item list.
	ErrItemNotFound = errors.New("item not found in order")
)

// Order represents a purchase record owned by a customer. It is the aggregate
// root that manages the line item list, the derived total price, and the order
// status.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Is created with at least one validated item
//   - totalPrice always equals the sum of item prices after any successful
//     mutation; callers never supply it
//   - Status transitions follow defined business rules (only cancellation is
//     exposed, and only for not-yet-canceled orders)
//   - Can only be created through NewOrder or RestoreOrder
//
// The customer identifier is an opaque reference; the aggregate does not
// cross-check it against the user store.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering party, immutable after creation
	customerID kernel.UUID

	// items is the ordered list of line entries; insertion order is preserved
	// for display and for first-match addressing by name
	items []Item

	// totalPrice is derived from items after every mutation
	totalPrice kernel.Price

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with Pending status and a total derived from
// the given items. This and RestoreOrder are the only ways to create a valid
// Order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: identifier of the ordering party (must be a valid UUID)
//   - items: initial line items (must be non-empty, each built via NewItem)
//
// Returns the created order, or a validation error if any parameter is invalid.
//
// Example:
//
//	price, _ := kernel.PriceFromFloat(10)
//	item, _ := order.NewItem("beans", price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := order.recomputeTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and an empty item list, since removals can leave a
// stored order without items. The total is recomputed from the items rather
// than trusted from storage, keeping the derived-total invariant on every load.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, items []Item, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	order.items = slices.Clone(items)

	if err := order.recomputeTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from external input to
// prevent bypassing validation by direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering party.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line item list in insertion order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalPrice returns the derived total, equal to the sum of item prices.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AppendItems appends validated items to the order and recomputes the total.
//
// Business rules:
//   - The new item list must be non-empty
//   - Every new item must be a constructed Item (non-empty name, valid price)
//   - On any validation failure the order is left unchanged
//
// Returns nil on success or a validation error.
func (o *Order) AppendItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append(o.items, items...)
	return o.recomputeTotal()
}

// UpdateItem replaces the first item whose name equals oldItemName with
// newItem and recomputes the total. Both the name and the price of the
// matched line take newItem's values.
//
// When several items share a name, only the first match in list order is
// replaced. Returns ErrItemNotFound (wrapped with the requested name) if no
// item matches, leaving the order unchanged.
func (o *Order) UpdateItem(oldItemName string, newItem Item) error {
	if err := newItem.Validate(); err != nil {
		return err
	}

	idx := o.indexOfItem(oldItemName)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, oldItemName)
	}

	o.items[idx] = newItem
	return o.recomputeTotal()
}

// RemoveItem removes the first item whose name equals itemName and recomputes
// the total. Removing the last item is allowed and leaves a zero total.
//
// Returns ErrItemNotFound (wrapped with the requested name) if no item
// matches, leaving the order unchanged.
func (o *Order) RemoveItem(itemName string) error {
	idx := o.indexOfItem(itemName)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemName)
	}

	o.items = slices.Delete(o.items, idx, idx+1)
	return o.recomputeTotal()
}

// Cancel marks the order as canceled.
//
// Business rules:
//   - Any not-yet-canceled order can be canceled
//   - A second cancellation fails with ErrOrderAlreadyCanceled and leaves the
//     status unchanged
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// indexOfItem returns the position of the first item with the given name,
// or -1 when absent. First-match semantics under duplicate names are part of
// the aggregate's contract.
func (o *Order) indexOfItem(name string) int {
	return slices.IndexFunc(o.items, func(item Item) bool {
		return item.Name() == name
	})
}

// recomputeTotal rederives totalPrice from the current item list.
func (o *Order) recomputeTotal() error {
	total := kernel.ZeroPrice()
	for _, item := range o.items {
		sum, err := total.Add(item.Price())
		if err != nil {
			return err
		}
		total = sum
	}

	o.totalPrice = total
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering party reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the initial item list. Creation requires at
// least one item; each item must come from NewItem.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

// setStatus validates and sets a restored status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
