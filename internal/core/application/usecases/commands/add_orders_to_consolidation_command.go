package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrAddOrdersToConsolidationCommandIsNotConstructed = errors.New(
	"AddOrdersToConsolidationCommand must be created via NewAddOrdersToConsolidationCommand constructor",
)

// AddOrdersToConsolidationCommand represents a request to claim additional
// eligible orders into an existing consolidation.
type AddOrdersToConsolidationCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Actor
	consolidationID kernel.UUID
	orderIDs        []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrdersToConsolidationCommand creates a command to add orders to a
// consolidation. The selection must be non-empty; duplicates are removed and
// the ids are kept sorted for deterministic claim order.
func NewAddOrdersToConsolidationCommand(
	actor auth.Actor,
	consolidationID kernel.UUID,
	orderIDs []kernel.UUID,
) (AddOrdersToConsolidationCommand, error) {
	cmd := AddOrdersToConsolidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsolidationID(consolidationID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return AddOrdersToConsolidationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrdersToConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrAddOrdersToConsolidationCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c AddOrdersToConsolidationCommand) Actor() auth.Actor {
	return c.actor
}

// ConsolidationID returns the consolidation to extend.
func (c AddOrdersToConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// OrderIDs returns the selected order ids, deduplicated and sorted.
func (c AddOrdersToConsolidationCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

func (c *AddOrdersToConsolidationCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddOrdersToConsolidationCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}

func (c *AddOrdersToConsolidationCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	ids, err := normalizeOrderSelection(orderIDs)
	if err != nil {
		return err
	}

	c.orderIDs = ids
	return nil
}
