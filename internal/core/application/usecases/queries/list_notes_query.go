package queries

import (
	"errors"
	"time"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var (
	ErrListNotesQueryIsNotConstructed = errors.New(
		"ListNotesQuery must be created via NewListNotesQuery constructor",
	)
)

// ListNotesQuery retrieves the notes on one order, replies included.
// Visibility mirrors order scoping: a customer reads notes only on their own
// orders, a supplier only on orders they supply, admin reads all. An
// out-of-scope order reads the same as a missing one.
type ListNotesQuery struct {
	actor   auth.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListNotesQuery creates a query for the notes on the given order.
func NewListNotesQuery(actor auth.Actor, orderID kernel.UUID) (ListNotesQuery, error) {
	var errsJoined error

	if err := actor.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if err := orderID.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if errsJoined != nil {
		return ListNotesQuery{}, errsJoined
	}

	return ListNotesQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotesQuery) Validate() error {
	return q.guard.Validate(ErrListNotesQueryIsNotConstructed)
}

// Actor returns the acting identity the lookup is scoped to.
func (q ListNotesQuery) Actor() auth.Actor {
	return q.actor
}

// OrderID returns the annotated order's id.
func (q ListNotesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListNotesQueryReply is one threaded reply in the read model.
type ListNotesQueryReply struct {
	ID         kernel.UUID
	AuthorID   kernel.UUID
	AuthorRole auth.Role
	Body       string
	CreatedAt  time.Time
}

// ListNotesQueryResponse is one note with its replies in posting order.
type ListNotesQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Title      string
	Body       string
	AuthorID   kernel.UUID
	AuthorRole auth.Role
	CreatedAt  time.Time
	Replies    []ListNotesQueryReply
}
