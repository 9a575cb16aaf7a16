package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrMarkPaymentPaidCommandIsNotConstructed = errors.New(
	"MarkPaymentPaidCommand must be created via NewMarkPaymentPaidCommand constructor",
)

// MarkPaymentPaidCommand represents a request to complete a pending payment.
type MarkPaymentPaidCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPaymentPaidCommand creates a command to complete a payment.
func NewMarkPaymentPaidCommand(actor auth.Actor, paymentID kernel.UUID) (MarkPaymentPaidCommand, error) {
	cmd := MarkPaymentPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setActor(actor), cmd.setPaymentID(paymentID)); err != nil {
		return MarkPaymentPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentPaidCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c MarkPaymentPaidCommand) Actor() auth.Actor {
	return c.actor
}

// PaymentID returns the payment to complete.
func (c MarkPaymentPaidCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *MarkPaymentPaidCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkPaymentPaidCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.paymentID = id
	return nil
}
