package paymentrepo

import (
	"context"
	"errors"
	"strings"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddIfNoActive inserts the payment only while the consolidation has no
// other non-cancelled payment. The insert carries the uniqueness probe in
// its own WHERE clause, and the partial unique index backs it up against
// writers racing in separate transactions.
func (r *GormPaymentRepository) AddIfNoActive(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO payments (
			id, consolidation_id, amount, currency, method, status,
			bank_name, bank_account, cardholder_name, card_last4, reference,
			created_at, paid_at
		)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM payments
			WHERE consolidation_id = ? AND status <> ?
		)
	`,
		dto.ID, dto.ConsolidationID, dto.Amount, dto.Currency, dto.Method, dto.Status,
		dto.Details.BankName, dto.Details.BankAccount, dto.Details.CardholderName,
		dto.Details.CardLast4, dto.Details.Reference,
		dto.CreatedAt, dto.PaidAt,
		dto.ConsolidationID, int(payment.StatusCancelled),
	)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return errs.NewDuplicateActivePaymentError(aggregate.ConsolidationID().String())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewDuplicateActivePaymentError(aggregate.ConsolidationID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment to the database. All columns are
// written.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFoundError("payment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasActiveByConsolidation reports whether the consolidation currently has
// a non-cancelled payment.
func (r *GormPaymentRepository) HasActiveByConsolidation(
	ctx context.Context,
	consolidationID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PaymentDTO{}).
		Where("consolidation_id = ? AND status <> ?",
			consolidationID.Bytes(), int(payment.StatusCancelled)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// isDuplicateKey recognizes a unique index violation across the drivers
// gorm may sit on.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
