package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves a page of catalog products from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog page retrieval.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve one catalog page.
// Name search matches case-insensitively anywhere in the name; the category
// filter matches exactly. Results are sorted by name for a stable listing.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetProductQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			merchant_id,
			name,
			description,
			category,
			price,
			quantity,
			status
		FROM products
		WHERE (? = '' OR name ILIKE '%' || ? || '%')
		  AND (? = '' OR category = ?)
		ORDER BY name
		LIMIT ? OFFSET ?
	`,
		query.Search(), query.Search(),
		query.Category(), query.Category(),
		query.Limit(), query.Skip(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanProductRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
