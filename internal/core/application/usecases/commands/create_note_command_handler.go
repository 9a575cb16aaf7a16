package commands

import (
	"context"

	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// CreateNoteCommandHandler annotates orders. Any actor who can read the
// order may create notes on it, so authorization uses the order's parties as
// the ownership boundary.
type CreateNoteCommandHandler struct {
	uowFactory NoteUoWFactory
	policy     services.AccessPolicy
}

// NewCreateNoteCommandHandler creates a handler for note creation.
func NewCreateNoteCommandHandler(uowFactory NoteUoWFactory, policy services.AccessPolicy) CreateNoteCommandHandler {
	return CreateNoteCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the note creation command.
func (h CreateNoteCommandHandler) Handle(ctx context.Context, cmd CreateNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	customerID := orderAggregate.CustomerID()
	supplierID := orderAggregate.SupplierID()
	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceNote, services.ActionCreate,
		services.OwnedBy(&customerID, &supplierID)) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionCreate))
	}

	aggregate, err := note.NewNote(cmd.NoteID(), orderAggregate.ID(), cmd.Actor(), cmd.Title(), cmd.Body())
	if err != nil {
		return err
	}

	if err = uow.NoteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
