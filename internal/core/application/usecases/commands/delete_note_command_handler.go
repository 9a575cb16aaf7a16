package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// DeleteNoteCommandHandler deletes notes. Only the note's author or an admin
// may delete; the role gate comes from the policy table and the authorship
// predicate from the aggregate itself.
type DeleteNoteCommandHandler struct {
	uowFactory NoteUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteNoteCommandHandler creates a handler for note deletion.
func NewDeleteNoteCommandHandler(uowFactory NoteUoWFactory, policy services.AccessPolicy) DeleteNoteCommandHandler {
	return DeleteNoteCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the note deletion command.
func (h DeleteNoteCommandHandler) Handle(ctx context.Context, cmd DeleteNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceNote, services.ActionDelete, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionDelete))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.NoteRepository()
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	if !aggregate.CanBeDeletedBy(cmd.Actor()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionDelete))
	}

	if err = noteRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
