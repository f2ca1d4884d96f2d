package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves one catalog product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product retrieval.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// product carries the requested identifier.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

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
		WHERE id = ?
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetProductQueryResponse{}, err
		}
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	response, err := scanProductRow(rows.Scan)
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	return response, nil
}

// scanProductRow converts one products row into the read model.
func scanProductRow(scan func(dest ...any) error) (GetProductQueryResponse, error) {
	var response GetProductQueryResponse
	var id, merchantID uuid.UUID

	if err := scan(
		&id,
		&merchantID,
		&response.Name,
		&response.Description,
		&response.Category,
		&response.Price,
		&response.Quantity,
		&response.Status,
	); err != nil {
		return GetProductQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	response.ID = productID

	ownerID, err := kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	response.MerchantID = ownerID

	return response, nil
}
