package queries

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var (
	ErrGetPaymentQueryIsNotConstructed = errors.New(
		"GetPaymentQuery must be created via NewGetPaymentQuery constructor",
	)
)

// GetPaymentQuery retrieves a single payment. Any authenticated actor may
// resolve the id, but the method-specific detail payload is redacted unless
// the actor is admin or a party on the consolidation's orders.
type GetPaymentQuery struct {
	actor     auth.Actor
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentQuery creates a query for one payment.
func NewGetPaymentQuery(actor auth.Actor, paymentID kernel.UUID) (GetPaymentQuery, error) {
	var errsJoined error

	if err := actor.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if err := paymentID.Validate(); err != nil {
		errsJoined = errors.Join(errsJoined, err)
	}
	if errsJoined != nil {
		return GetPaymentQuery{}, errsJoined
	}

	return GetPaymentQuery{
		actor:     actor,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueryIsNotConstructed)
}

// Actor returns the acting identity the redaction decision applies to.
func (q GetPaymentQuery) Actor() auth.Actor {
	return q.actor
}

// PaymentID returns the id being fetched.
func (q GetPaymentQuery) PaymentID() kernel.UUID {
	return q.paymentID
}
