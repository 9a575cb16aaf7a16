package queries

import (
	"errors"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var (
	ErrListConsolidationsQueryIsNotConstructed = errors.New(
		"ListConsolidationsQuery must be created via NewListConsolidationsQuery constructor",
	)
)

// ListConsolidationsQuery retrieves consolidations visible to the acting
// identity. A customer or supplier sees only consolidations containing at
// least one of their orders; admin sees everything. Archived consolidations
// are excluded unless explicitly requested.
type ListConsolidationsQuery struct {
	actor           auth.Actor
	includeArchived bool

	guard guard.ConstructorGuard
}

// NewListConsolidationsQuery creates a query scoped to the given actor.
func NewListConsolidationsQuery(actor auth.Actor, includeArchived bool) (ListConsolidationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListConsolidationsQuery{}, err
	}

	return ListConsolidationsQuery{
		actor:           actor,
		includeArchived: includeArchived,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListConsolidationsQuery) Validate() error {
	return q.guard.Validate(ErrListConsolidationsQueryIsNotConstructed)
}

// Actor returns the acting identity the result set is scoped to.
func (q ListConsolidationsQuery) Actor() auth.Actor {
	return q.actor
}

// IncludeArchived reports whether retired consolidations are part of the
// result set.
func (q ListConsolidationsQuery) IncludeArchived() bool {
	return q.includeArchived
}

// ListConsolidationsQueryResponse is the consolidation row in the read
// model, aggregates included.
type ListConsolidationsQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Status         consolidation.Status
	TotalWeight    int
	TotalValue     kernel.Money
	SupplierCount  int
	CustomerCount  int
	TrackingNumber *string
	ShippedAt      *time.Time
	HasPayment     bool
	Archived       bool
	CreatedAt      time.Time
}
