// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ecommerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserRepoFactory provides access to user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// SessionRepoFactory provides access to session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// SessionUoW manages transactions for session-only operations.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// AuthUoW manages transactions spanning user and session aggregates.
	// Used for sign-in, which reads the account and writes a session row.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   userRepo := uow.UserRepository()
	//   sessionRepo := uow.SessionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AuthUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	// AuthUoWFactory creates new unit of work instances for auth operations.
	AuthUoWFactory interface {
		Create() AuthUoW
	}
)
