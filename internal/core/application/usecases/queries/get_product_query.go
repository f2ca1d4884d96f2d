package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one catalog product by identifier.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve one product by identifier.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to fetch.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductQueryResponse represents a catalog product in the read model.
type GetProductQueryResponse struct {
	ID          kernel.UUID
	MerchantID  kernel.UUID
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
	Status      string
}
