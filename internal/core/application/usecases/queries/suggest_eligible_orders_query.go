package queries

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/pkg/guard"
)

var (
	ErrSuggestEligibleOrdersQueryIsNotConstructed = errors.New(
		"SuggestEligibleOrdersQuery must be created via NewSuggestEligibleOrdersQuery constructor",
	)
)

// SuggestEligibleOrdersQuery retrieves orders an operator can pull into a
// consolidation: ready for consolidation and not yet claimed. The result is
// ordered by creation time then id, the same tie-break the aggregator
// applies, so the suggestion reads as a stable queue.
type SuggestEligibleOrdersQuery struct {
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewSuggestEligibleOrdersQuery creates a query for the consolidation
// candidate queue.
func NewSuggestEligibleOrdersQuery(actor auth.Actor) (SuggestEligibleOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return SuggestEligibleOrdersQuery{}, err
	}

	return SuggestEligibleOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SuggestEligibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSuggestEligibleOrdersQueryIsNotConstructed)
}

// Actor returns the acting identity.
func (q SuggestEligibleOrdersQuery) Actor() auth.Actor {
	return q.actor
}
