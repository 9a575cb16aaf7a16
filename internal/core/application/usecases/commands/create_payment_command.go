package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to open a payment against a
// consolidation. The amount is not part of the command: it is snapshotted
// from the consolidation's total value at handling time.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Actor
	paymentID       kernel.UUID
	consolidationID kernel.UUID
	method          payment.Method
	details         payment.Details

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to open a payment.
func NewCreatePaymentCommand(
	actor auth.Actor,
	paymentID kernel.UUID,
	consolidationID kernel.UUID,
	method payment.Method,
	details payment.Details,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPaymentID(paymentID),
		cmd.setConsolidationID(consolidationID),
		cmd.setMethod(method),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c CreatePaymentCommand) Actor() auth.Actor {
	return c.actor
}

// PaymentID returns the unique identifier for the new payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ConsolidationID returns the consolidation the payment settles.
func (c CreatePaymentCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// Method returns the settlement method.
func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

// Details returns the method-specific payload.
func (c CreatePaymentCommand) Details() payment.Details {
	return c.details
}

func (c *CreatePaymentCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreatePaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.paymentID = id
	return nil
}

func (c *CreatePaymentCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}

func (c *CreatePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
