package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one account profile by identifier.
// The password hash never appears in the read model.
type GetUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve one account by identifier.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the account to fetch.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

// GetUserQueryResponse represents an account profile in the read model.
type GetUserQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}
