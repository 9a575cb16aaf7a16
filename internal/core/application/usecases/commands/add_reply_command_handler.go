package commands

import (
	"context"

	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// AddReplyCommandHandler appends replies to note threads. The reply
// permission mirrors note creation: any actor who can read the annotated
// order may reply.
type AddReplyCommandHandler struct {
	uowFactory NoteUoWFactory
	policy     services.AccessPolicy
}

// NewAddReplyCommandHandler creates a handler for reply creation.
func NewAddReplyCommandHandler(uowFactory NoteUoWFactory, policy services.AccessPolicy) AddReplyCommandHandler {
	return AddReplyCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the reply creation command.
func (h AddReplyCommandHandler) Handle(ctx context.Context, cmd AddReplyCommand) error {
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

	noteRepo := uow.NoteRepository()
	aggregate, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	orderAggregate, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}

	customerID := orderAggregate.CustomerID()
	supplierID := orderAggregate.SupplierID()
	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceNote, services.ActionReply,
		services.OwnedBy(&customerID, &supplierID)) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionReply))
	}

	reply, err := note.NewReply(cmd.ReplyID(), cmd.Actor(), cmd.Body())
	if err != nil {
		return err
	}
	aggregate.AddReply(reply)

	if err = noteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
