package ports

import (
	"context"
	"time"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
)

// ConsolidationRepository defines the persistence contract for consolidation
// aggregates.
type ConsolidationRepository interface {
	// Add persists a new consolidation aggregate to storage.
	Add(ctx context.Context, aggregate *consolidation.Consolidation) error

	// Update persists changes to an existing consolidation aggregate.
	Update(ctx context.Context, aggregate *consolidation.Consolidation) error

	// Get retrieves a consolidation aggregate by its unique identifier.
	// Returns NotFound if no such consolidation exists.
	Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error)

	// GetDeliveredBefore retrieves unarchived delivered consolidations
	// whose shipping date lies before the cutoff. Used by archival.
	GetDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*consolidation.Consolidation, error)
}
