package ports

import (
	"context"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// AddIfNoActive inserts the payment only if the targeted consolidation
	// has no other non-cancelled payment. The uniqueness check and the
	// insert are a single atomic operation. Returns DuplicateActivePayment
	// when an active payment already exists.
	AddIfNoActive(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment record by its unique identifier.
	// Returns NotFound if no such payment exists.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// HasActiveByConsolidation reports whether the consolidation currently
	// has a non-cancelled payment.
	HasActiveByConsolidation(ctx context.Context, consolidationID kernel.UUID) (bool, error)
}
