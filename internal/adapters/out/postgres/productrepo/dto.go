// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
// Indexed by category and name to support the catalog browse filters.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;index"`
	Name        string          `gorm:"index"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"index"`
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
	Status      string `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		MerchantID:  aggregate.MerchantID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		Price:       aggregate.Price().Decimal(),
		Quantity:    aggregate.Quantity(),
		Status:      aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	status, err := product.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		merchantID,
		dto.Name,
		dto.Description,
		dto.Category,
		price,
		dto.Quantity,
		status,
	)
}
