package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrCancelPaymentCommandIsNotConstructed = errors.New(
	"CancelPaymentCommand must be created via NewCancelPaymentCommand constructor",
)

// CancelPaymentCommand represents a request to void a payment, either before
// settlement or afterwards as an administrative correction.
type CancelPaymentCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPaymentCommand creates a command to void a payment.
func NewCancelPaymentCommand(actor auth.Actor, paymentID kernel.UUID) (CancelPaymentCommand, error) {
	cmd := CancelPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setActor(actor), cmd.setPaymentID(paymentID)); err != nil {
		return CancelPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelPaymentCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c CancelPaymentCommand) Actor() auth.Actor {
	return c.actor
}

// PaymentID returns the payment to void.
func (c CancelPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *CancelPaymentCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CancelPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.paymentID = id
	return nil
}
