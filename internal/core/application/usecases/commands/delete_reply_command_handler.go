package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// DeleteReplyCommandHandler deletes single replies. Authorship rules mirror
// note deletion: only the reply's author or an admin may delete it.
type DeleteReplyCommandHandler struct {
	uowFactory NoteUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteReplyCommandHandler creates a handler for reply deletion.
func NewDeleteReplyCommandHandler(uowFactory NoteUoWFactory, policy services.AccessPolicy) DeleteReplyCommandHandler {
	return DeleteReplyCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the reply deletion command.
func (h DeleteReplyCommandHandler) Handle(ctx context.Context, cmd DeleteReplyCommand) error {
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

	reply, err := aggregate.FindReply(cmd.ReplyID())
	if err != nil {
		return err
	}
	if !reply.CanBeDeletedBy(cmd.Actor()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionDelete))
	}

	if err = aggregate.RemoveReply(cmd.ReplyID()); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
