// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence. The single-active-payment rule is enforced in
// storage: a partial unique index on the consolidation reference covers all
// non-cancelled rows, so two racing inserts can never both commit.
package paymentrepo

import (
	"time"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// records. The where clause on the unique index hardcodes the cancelled
// status value; see payment.StatusCancelled.
type PaymentDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ConsolidationID uuid.UUID       `gorm:"type:uuid;not null;index;index:uniq_active_payment,unique,where:status <> 3"`
	Amount          decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Method          string          `gorm:"type:varchar(32);not null"`
	Status          int             `gorm:"not null;index"`
	Details         DetailsDTO      `gorm:"embedded"`
	CreatedAt       time.Time       `gorm:"not null"`
	PaidAt          *time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// DetailsDTO represents the embedded method-specific payload.
type DetailsDTO struct {
	BankName       string `gorm:"type:varchar(255)"`
	BankAccount    string `gorm:"type:varchar(64)"`
	CardholderName string `gorm:"type:varchar(255)"`
	CardLast4      string `gorm:"type:varchar(4)"`
	Reference      string `gorm:"type:varchar(255)"`
}

// fromDomain converts a payment record to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	details := aggregate.Details()

	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		ConsolidationID: aggregate.ConsolidationID().Bytes(),
		Amount:          aggregate.Amount().Amount(),
		Currency:        string(aggregate.Amount().Currency()),
		Method:          aggregate.Method().String(),
		Status:          int(aggregate.Status()),
		Details: DetailsDTO{
			BankName:       details.BankName,
			BankAccount:    details.BankAccount,
			CardholderName: details.CardholderName,
			CardLast4:      details.CardLast4,
			Reference:      details.Reference,
		},
		CreatedAt: aggregate.CreatedAt(),
		PaidAt:    aggregate.PaidAt(),
	}
}

// toDomain converts a database DTO to a payment record using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consolidationID, err := kernel.UUIDFromBytes(dto.ConsolidationID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount, kernel.Currency(dto.Currency))
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		consolidationID,
		amount,
		payment.Method(dto.Method),
		payment.Details{
			BankName:       dto.Details.BankName,
			BankAccount:    dto.Details.BankAccount,
			CardholderName: dto.Details.CardholderName,
			CardLast4:      dto.Details.CardLast4,
			Reference:      dto.Details.Reference,
		},
		payment.Status(dto.Status),
		dto.CreatedAt,
		dto.PaidAt,
	)
}
