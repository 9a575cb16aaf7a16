package commands

import (
	"errors"
	"sort"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

var ErrCreateConsolidationCommandIsNotConstructed = errors.New(
	"CreateConsolidationCommand must be created via NewCreateConsolidationCommand constructor",
)

// CreateConsolidationCommand represents a request to aggregate a non-empty
// selection of eligible orders into a new outbound shipment.
type CreateConsolidationCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Actor
	consolidationID kernel.UUID
	name            string
	orderIDs        []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateConsolidationCommand creates a command to build a consolidation
// from the selected orders. The selection must be non-empty; duplicates are
// removed and the ids are kept sorted so concurrent aggregations claiming
// overlapping selections always lock orders in the same sequence.
func NewCreateConsolidationCommand(
	actor auth.Actor,
	consolidationID kernel.UUID,
	name string,
	orderIDs []kernel.UUID,
) (CreateConsolidationCommand, error) {
	cmd := CreateConsolidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsolidationID(consolidationID),
		cmd.setName(name),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateConsolidationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrCreateConsolidationCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c CreateConsolidationCommand) Actor() auth.Actor {
	return c.actor
}

// ConsolidationID returns the unique identifier for the new consolidation.
func (c CreateConsolidationCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// Name returns the human-readable name.
func (c CreateConsolidationCommand) Name() string {
	return c.name
}

// OrderIDs returns the selected order ids, deduplicated and sorted.
func (c CreateConsolidationCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

func (c *CreateConsolidationCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateConsolidationCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}

func (c *CreateConsolidationCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateConsolidationCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	ids, err := normalizeOrderSelection(orderIDs)
	if err != nil {
		return err
	}

	c.orderIDs = ids
	return nil
}

// normalizeOrderSelection validates, deduplicates, and sorts an order
// selection. An empty selection is rejected with EmptySelection.
func normalizeOrderSelection(orderIDs []kernel.UUID) ([]kernel.UUID, error) {
	if len(orderIDs) == 0 {
		return nil, errs.NewEmptySelectionError("orderIDs")
	}

	seen := make(map[string]struct{}, len(orderIDs))
	out := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		out = append(out, id)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}
