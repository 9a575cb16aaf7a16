package queries

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var (
	ErrGetConsolidationQueryIsNotConstructed = errors.New(
		"GetConsolidationQuery must be created via NewGetConsolidationQuery constructor",
	)
)

// GetConsolidationQuery retrieves a single consolidation with its member
// order ids. Scoping matches ListConsolidationsQuery: a customer or supplier
// can only fetch a consolidation containing one of their orders, and an
// out-of-scope id reads the same as a missing one.
type GetConsolidationQuery struct {
	actor           auth.Actor
	consolidationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetConsolidationQuery creates a query for one consolidation.
func NewGetConsolidationQuery(actor auth.Actor, consolidationID kernel.UUID) (GetConsolidationQuery, error) {
	var errsJoined error

	if err := actor.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if err := consolidationID.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if errsJoined != nil {
		return GetConsolidationQuery{}, errsJoined
	}

	return GetConsolidationQuery{
		actor:           actor,
		consolidationID: consolidationID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsolidationQuery) Validate() error {
	return q.guard.Validate(ErrGetConsolidationQueryIsNotConstructed)
}

// Actor returns the acting identity the lookup is scoped to.
func (q GetConsolidationQuery) Actor() auth.Actor {
	return q.actor
}

// ConsolidationID returns the id being fetched.
func (q GetConsolidationQuery) ConsolidationID() kernel.UUID {
	return q.consolidationID
}

// GetConsolidationQueryResponse is the single-consolidation read model: the
// consolidation row plus its member order ids in ascending id order.
type GetConsolidationQueryResponse struct {
	Consolidation ListConsolidationsQueryResponse
	MemberIDs     []kernel.UUID
}
