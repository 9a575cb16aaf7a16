// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Besides plain aggregate storage it implements the
// compare-and-set writes the order lifecycle and the consolidation claim
// protocol depend on.
package orderrepo

import (
	"time"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The consolidation reference is the claim column: NULL means
// unclaimed, and the claim queries compare against it atomically.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Price           MoneyDTO   `gorm:"embedded;embeddedPrefix:price_"`
	ItemCount       int        `gorm:"not null"`
	Weight          int        `gorm:"not null"`
	Status          int        `gorm:"not null;index"`
	ConsolidationID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// MoneyDTO represents an embedded monetary value.
type MoneyDTO struct {
	Amount   decimal.Decimal `gorm:"type:numeric(20,4)"`
	Currency string          `gorm:"type:varchar(3)"`
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var consolidationID *uuid.UUID
	if ref := aggregate.Consolidation(); ref != nil {
		raw := ref.Bytes()
		consolidationID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		SupplierID: aggregate.SupplierID().Bytes(),
		Price: MoneyDTO{
			Amount:   aggregate.Price().Amount(),
			Currency: string(aggregate.Price().Currency()),
		},
		ItemCount:       aggregate.ItemCount(),
		Weight:          aggregate.Weight(),
		Status:          int(aggregate.Status()),
		ConsolidationID: consolidationID,
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price.Amount, kernel.Currency(dto.Price.Currency))
	if err != nil {
		return nil, err
	}

	var consolidationID *kernel.UUID
	if dto.ConsolidationID != nil {
		ref, refErr := kernel.UUIDFromBytes((*dto.ConsolidationID)[:])
		if refErr != nil {
			return nil, refErr
		}
		consolidationID = &ref
	}

	return order.RestoreOrder(
		id,
		customerID,
		supplierID,
		price,
		dto.ItemCount,
		dto.Weight,
		order.Status(dto.Status),
		consolidationID,
		dto.CreatedAt,
	)
}
