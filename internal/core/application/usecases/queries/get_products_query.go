package queries

import (
	"errors"

	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

const (
	// DefaultPageLimit is used when the caller does not specify a limit.
	DefaultPageLimit = 10

	// MaxPageLimit caps how many products a single page may return.
	MaxPageLimit = 100
)

// GetProductsQuery retrieves a page of catalog products. Supports offset
// pagination, case-insensitive name search and category filtering.
//
// Example:
//
//	query, err := NewGetProductsQuery(0, 20, "chair", "furniture")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetProductsQueryHandler(db)
//	products, err := handler.Handle(ctx, query)
type GetProductsQuery struct {
	skip     int
	limit    int
	search   string
	category string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a paged catalog query. A zero limit falls back
// to DefaultPageLimit; limits outside 1..MaxPageLimit and negative skips are
// rejected. Empty search and category disable the respective filter.
func NewGetProductsQuery(skip, limit int, search, category string) (GetProductsQuery, error) {
	if skip < 0 {
		return GetProductsQuery{}, errs.NewValueIsInvalidError("skip")
	}

	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return GetProductsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	return GetProductsQuery{
		skip:     skip,
		limit:    limit,
		search:   search,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Skip returns how many products to skip before the page starts.
func (q GetProductsQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q GetProductsQuery) Limit() int {
	return q.limit
}

// Search returns the name search term; empty means no name filter.
func (q GetProductsQuery) Search() string {
	return q.search
}

// Category returns the category filter; empty means no category filter.
func (q GetProductsQuery) Category() string {
	return q.category
}
