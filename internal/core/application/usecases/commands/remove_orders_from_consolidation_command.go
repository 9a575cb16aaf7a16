package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/guard"
)

var ErrRemoveOrdersFromConsolidationCommandIsNotConstructed = errors.New(
	"RemoveOrdersFromConsolidationCommand must be created via NewRemoveOrdersFromConsolidationCommand constructor",
)

// RemoveOrdersFromConsolidationCommand represents a request to release member
// orders from a consolidation back to eligibility.
type RemoveOrdersFromConsolidationCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Actor
	consolidationID kernel.UUID
	orderIDs        []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrdersFromConsolidationCommand creates a command to release orders
// from a consolidation. The selection must be non-empty; duplicates are
// removed and the ids are kept sorted for deterministic release order.
func NewRemoveOrdersFromConsolidationCommand(
	actor auth.Actor,
	consolidationID kernel.UUID,
	orderIDs []kernel.UUID,
) (RemoveOrdersFromConsolidationCommand, error) {
	cmd := RemoveOrdersFromConsolidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsolidationID(consolidationID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return RemoveOrdersFromConsolidationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrdersFromConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrdersFromConsolidationCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c RemoveOrdersFromConsolidationCommand) Actor() auth.Actor {
	return c.actor
}

// ConsolidationID returns the consolidation to shrink.
func (c RemoveOrdersFromConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// OrderIDs returns the selected order ids, deduplicated and sorted.
func (c RemoveOrdersFromConsolidationCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

func (c *RemoveOrdersFromConsolidationCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RemoveOrdersFromConsolidationCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}

func (c *RemoveOrdersFromConsolidationCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	ids, err := normalizeOrderSelection(orderIDs)
	if err != nil {
		return err
	}

	c.orderIDs = ids
	return nil
}
