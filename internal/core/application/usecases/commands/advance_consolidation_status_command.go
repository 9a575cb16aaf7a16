package commands

import (
	"errors"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"
)

var ErrAdvanceConsolidationStatusCommandIsNotConstructed = errors.New(
	"AdvanceConsolidationStatusCommand must be created via NewAdvanceConsolidationStatusCommand constructor",
)

// AdvanceConsolidationStatusCommand represents a request to move a
// consolidation one step forward in its lifecycle, or to cancel it. An
// optional tracking number may be supplied alongside, so the dispatch step
// can be prepared and executed in a single call.
type AdvanceConsolidationStatusCommand struct { //nolint:recvcheck //using for validation
	actor           auth.Actor
	consolidationID kernel.UUID
	target          consolidation.Status
	trackingNumber  *string

	guard guard.ConstructorGuard
}

// NewAdvanceConsolidationStatusCommand creates a command to advance or cancel
// a consolidation. trackingNumber, when non-nil, must be non-empty.
func NewAdvanceConsolidationStatusCommand(
	actor auth.Actor,
	consolidationID kernel.UUID,
	target consolidation.Status,
	trackingNumber *string,
) (AdvanceConsolidationStatusCommand, error) {
	cmd := AdvanceConsolidationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setConsolidationID(consolidationID),
		cmd.setTarget(target),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return AdvanceConsolidationStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceConsolidationStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceConsolidationStatusCommandIsNotConstructed)
}

// Actor returns the actor issuing the command.
func (c AdvanceConsolidationStatusCommand) Actor() auth.Actor {
	return c.actor
}

// ConsolidationID returns the consolidation to advance.
func (c AdvanceConsolidationStatusCommand) ConsolidationID() kernel.UUID {
	return c.consolidationID
}

// Target returns the requested target status.
func (c AdvanceConsolidationStatusCommand) Target() consolidation.Status {
	return c.target
}

// TrackingNumber returns the tracking number to set before advancing, or nil.
func (c AdvanceConsolidationStatusCommand) TrackingNumber() *string {
	return c.trackingNumber
}

func (c *AdvanceConsolidationStatusCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AdvanceConsolidationStatusCommand) setConsolidationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.consolidationID = id
	return nil
}

func (c *AdvanceConsolidationStatusCommand) setTarget(target consolidation.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceConsolidationStatusCommand) setTrackingNumber(trackingNumber *string) error {
	if trackingNumber != nil && *trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	c.trackingNumber = trackingNumber
	return nil
}
