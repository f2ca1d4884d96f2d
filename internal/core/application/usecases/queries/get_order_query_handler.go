package queries

import (
	"context"
	"encoding/json"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// order carries the requested identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			items,
			total_price,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	response, err := scanOrderRow(rows.Scan)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

// scanOrderRow converts one orders row into the read model. The items column
// holds a JSON array of name/price pairs.
func scanOrderRow(scan func(dest ...any) error) (GetOrderQueryResponse, error) {
	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var itemsJSON []byte

	if err := scan(
		&id,
		&customerID,
		&itemsJSON,
		&response.TotalPrice,
		&response.Status,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID

	ordererID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.CustomerID = ordererID

	items := make([]OrderItemResponse, 0)
	if err = json.Unmarshal(itemsJSON, &items); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}
