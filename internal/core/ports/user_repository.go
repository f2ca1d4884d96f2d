package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
// Email uniqueness is enforced by storage; Add reports a conflict error
// when the email is already registered.
type UserRepository interface {
	// Add persists a new user account to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by their email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
