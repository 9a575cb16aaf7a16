package queries

import (
	"errors"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders visible to the acting identity, optionally
// narrowed to a single lifecycle status. A customer sees only their own
// orders, a supplier only orders placed against them, admin sees everything.
type ListOrdersQuery struct {
	actor  auth.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query scoped to the given actor. Pass a nil
// status to list orders in every status.
func NewListOrdersQuery(actor auth.Actor, status *order.Status) (ListOrdersQuery, error) {
	var errsJoined error

	if err := actor.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			errsJoined = errors.Join(errsJoined, err)
		}
	}
	if errsJoined != nil {
		return ListOrdersQuery{}, errsJoined
	}

	return ListOrdersQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity the result set is scoped to.
func (q ListOrdersQuery) Actor() auth.Actor {
	return q.actor
}

// StatusFilter returns the optional status filter, nil when unset.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	return q.status
}

// ListOrdersQueryResponse is the order row in the read model.
type ListOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	SupplierID      kernel.UUID
	Price           kernel.Money
	ItemCount       int
	Weight          int
	Status          order.Status
	ConsolidationID *kernel.UUID
	CreatedAt       time.Time
}
