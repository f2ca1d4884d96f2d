// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items live in a jsonb column so the aggregate is read and written as one
// row; the derived total is stored alongside for cheap listing queries.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index"`
	Items      ItemsDTO        `gorm:"type:jsonb"`
	TotalPrice decimal.Decimal `gorm:"type:numeric"`
	Status     string          `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line inside the jsonb items column.
type ItemDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ItemsDTO is the jsonb-encoded item list of an order row.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer, encoding the item list as JSON.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner, decoding the jsonb column into the item list.
func (items *ItemsDTO) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make(ItemsDTO, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			Name:  item.Name(),
			Price: item.Price().Float64(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
		TotalPrice: aggregate.TotalPrice().Decimal(),
		Status:     aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate with RestoreOrder, which re-derives the
// total from the item list.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.PriceFromFloat(itemDTO.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.Name, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, items, status)
}
