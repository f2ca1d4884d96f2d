package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler retrieves one account profile from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for profile retrieval.
// Requires a GORM database connection for query execution.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// account carries the requested identifier.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) (GetUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone,
			role
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetUserQueryResponse{}, err
		}
		return GetUserQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}

	var response GetUserQueryResponse
	var id uuid.UUID

	if err = rows.Scan(
		&id,
		&response.FirstName,
		&response.LastName,
		&response.Email,
		&response.Phone,
		&response.Role,
	); err != nil {
		return GetUserQueryResponse{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetUserQueryResponse{}, err
	}
	response.ID = userID

	return response, nil
}
