package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
)

// SessionRepository defines the persistence contract for sign-in sessions.
type SessionRepository interface {
	// Add persists a new session row.
	Add(ctx context.Context, session user.Session) error

	// Get retrieves a session by its opaque token.
	Get(ctx context.Context, token kernel.UUID) (user.Session, error)

	// DeleteExpired removes every session whose expiry has passed and
	// returns the number of rows removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
