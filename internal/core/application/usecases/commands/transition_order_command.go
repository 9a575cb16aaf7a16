package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order one step
// through its lifecycle, including the cancellation branch.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	actor   auth.Actor
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The target must be a valid status; whether it is reachable from the
// current status is decided by the handler against live state.
func NewTransitionOrderCommand(actor auth.Actor, orderID kernel.UUID, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c TransitionOrderCommand) Actor() auth.Actor {
	return c.actor
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
