package queries

import (
	"errors"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/pkg/guard"
)

var (
	ErrListPaymentsQueryIsNotConstructed = errors.New(
		"ListPaymentsQuery must be created via NewListPaymentsQuery constructor",
	)
)

// ListPaymentsQuery retrieves payments visible to the acting identity,
// optionally narrowed to a single consolidation. Non-admin actors only see
// payments of consolidations containing one of their orders.
type ListPaymentsQuery struct {
	actor           auth.Actor
	consolidationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListPaymentsQuery creates a query scoped to the given actor. Pass a nil
// consolidation id to list across all visible consolidations.
func NewListPaymentsQuery(actor auth.Actor, consolidationID *kernel.UUID) (ListPaymentsQuery, error) {
	var errsJoined error

	if err := actor.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if consolidationID != nil {
		if err := consolidationID.Validate(); err != nil {
			errsJoined = errors.Join(errsJoined, err)
		}
	}
	if errsJoined != nil {
		return ListPaymentsQuery{}, errsJoined
	}

	return ListPaymentsQuery{
		actor:           actor,
		consolidationID: consolidationID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListPaymentsQueryIsNotConstructed)
}

// Actor returns the acting identity the result set is scoped to.
func (q ListPaymentsQuery) Actor() auth.Actor {
	return q.actor
}

// ConsolidationFilter returns the optional consolidation filter, nil when
// unset.
func (q ListPaymentsQuery) ConsolidationFilter() *kernel.UUID {
	return q.consolidationID
}

// ListPaymentsQueryResponse is the payment row in the read model. Details
// carries the method-specific payload and is redacted for actors who are
// neither admin nor a party on the consolidation's orders.
type ListPaymentsQueryResponse struct {
	ID              kernel.UUID
	ConsolidationID kernel.UUID
	Amount          kernel.Money
	Method          payment.Method
	Status          payment.Status
	Details         payment.Details
	CreatedAt       time.Time
	PaidAt          *time.Time
}
