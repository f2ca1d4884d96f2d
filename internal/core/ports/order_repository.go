// Package ports defines repository interfaces for the store domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and removing order entities
// together with their item lists.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, total price and status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order aggregate from storage permanently.
	// Returns an error if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
