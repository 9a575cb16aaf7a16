// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Besides plain aggregate storage it exposes the atomic compare-and-set
// operations the lifecycle depends on: single-step status transitions and the
// claim/release of an order by a consolidation. Each of these is a single
// conditional write against the stored current state, never a read-then-write
// pair, so two concurrent callers can never both observe success.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns NotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Transition moves the order from one status to another in a single
	// conditional write. The write succeeds only while the stored status
	// still equals from and the order is not claimed by a consolidation.
	// Returns Conflict when the guard fails on an existing order.
	Transition(ctx context.Context, id kernel.UUID, from order.Status, to order.Status) error

	// ClaimForConsolidation atomically claims an eligible order for the
	// given consolidation: the order must be in ReadyForConsolidation and
	// not referenced by any consolidation. On success the order moves to
	// Consolidated with its reference set. Returns OrderNotEligible when
	// the claim guard fails on an existing order.
	ClaimForConsolidation(ctx context.Context, orderID kernel.UUID, consolidationID kernel.UUID) error

	// ReleaseFromConsolidation atomically returns a member order to
	// ReadyForConsolidation and clears its reference. The write succeeds
	// only while the order is in Consolidated and referenced by exactly
	// the given consolidation. Returns Conflict when the guard fails.
	ReleaseFromConsolidation(ctx context.Context, orderID kernel.UUID, consolidationID kernel.UUID) error

	// GetMembers retrieves all orders claimed by the given consolidation,
	// ordered by id for deterministic processing.
	GetMembers(ctx context.Context, consolidationID kernel.UUID) ([]*order.Order, error)

	// AdvanceMembers moves every member order of the consolidation from
	// one shipment status to the next in a single write. Used when the
	// consolidation itself is dispatched or delivered.
	AdvanceMembers(ctx context.Context, consolidationID kernel.UUID, from order.Status, to order.Status) error

	// DetachDelivered clears the consolidation reference on delivered
	// member orders. Used by archival once the retention period passed.
	DetachDelivered(ctx context.Context, consolidationID kernel.UUID) error
}
