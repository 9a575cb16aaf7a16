// Package consolidationrepo provides data transfer objects and mapping
// functions for consolidation persistence. Membership is not stored here:
// the orders table holds the claim column, and the member id list is read
// from it on load.
package consolidationrepo

import (
	"time"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsolidationDTO represents the database structure for persisting
// consolidation aggregates, denormalized aggregates included.
type ConsolidationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Status         int       `gorm:"not null;index"`
	TotalWeight    int       `gorm:"not null"`
	TotalValue     MoneyDTO  `gorm:"embedded;embeddedPrefix:total_value_"`
	SupplierCount  int       `gorm:"not null"`
	CustomerCount  int       `gorm:"not null"`
	TrackingNumber *string   `gorm:"type:varchar(255)"`
	ShippedAt      *time.Time
	HasPayment     bool      `gorm:"not null"`
	Archived       bool      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for consolidation entities.
func (ConsolidationDTO) TableName() string {
	return "consolidations"
}

// MoneyDTO represents an embedded monetary value.
type MoneyDTO struct {
	Amount   decimal.Decimal `gorm:"type:numeric(20,4)"`
	Currency string          `gorm:"type:varchar(3)"`
}

// fromDomain converts a consolidation domain aggregate to its database
// representation.
func fromDomain(aggregate *consolidation.Consolidation) ConsolidationDTO {
	aggregates := aggregate.Aggregates()

	return ConsolidationDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Status:      int(aggregate.Status()),
		TotalWeight: aggregates.TotalWeight,
		TotalValue: MoneyDTO{
			Amount:   aggregates.TotalValue.Amount(),
			Currency: string(aggregates.TotalValue.Currency()),
		},
		SupplierCount:  aggregates.SupplierCount,
		CustomerCount:  aggregates.CustomerCount,
		TrackingNumber: aggregate.TrackingNumber(),
		ShippedAt:      aggregate.ShippedAt(),
		HasPayment:     aggregate.HasPayment(),
		Archived:       aggregate.IsArchived(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO plus the member id list to a
// consolidation domain aggregate using RestoreConsolidation.
func toDomain(dto ConsolidationDTO, memberIDs []kernel.UUID) (*consolidation.Consolidation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	totalValue, err := kernel.NewMoney(dto.TotalValue.Amount, kernel.Currency(dto.TotalValue.Currency))
	if err != nil {
		return nil, err
	}

	return consolidation.RestoreConsolidation(
		id,
		dto.Name,
		memberIDs,
		consolidation.Aggregates{
			TotalWeight:   dto.TotalWeight,
			TotalValue:    totalValue,
			SupplierCount: dto.SupplierCount,
			CustomerCount: dto.CustomerCount,
		},
		consolidation.Status(dto.Status),
		dto.ShippedAt,
		dto.TrackingNumber,
		dto.HasPayment,
		dto.Archived,
		dto.CreatedAt,
	)
}
