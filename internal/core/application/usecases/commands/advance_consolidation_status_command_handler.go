package commands

import (
	"context"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// AdvanceConsolidationStatusCommandHandler moves consolidations one step
// forward, or cancels them while membership is still open and empty.
//
// Dispatch and delivery propagate to the member orders in the same
// transaction: when the consolidation enters InTransit or Delivered, every
// member order follows in one write, so the shipment tail of the order
// lifecycle can never diverge from the consolidation holding it.
type AdvanceConsolidationStatusCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	policy     services.AccessPolicy
}

// NewAdvanceConsolidationStatusCommandHandler creates a handler for
// consolidation status changes.
func NewAdvanceConsolidationStatusCommandHandler(
	uowFactory ConsolidationUoWFactory,
	policy services.AccessPolicy,
) AdvanceConsolidationStatusCommandHandler {
	return AdvanceConsolidationStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status change command.
func (h AdvanceConsolidationStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceConsolidationStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	action := services.ActionAdvanceStatus
	if cmd.Target() == consolidation.Cancelled {
		action = services.ActionCancel
	}
	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceConsolidation, action, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(action))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	aggregate, err := consolidationRepo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}

	if cmd.TrackingNumber() != nil {
		if err = aggregate.SetTrackingNumber(*cmd.TrackingNumber()); err != nil {
			return err
		}
	}

	if cmd.Target() == consolidation.Cancelled {
		err = aggregate.Cancel()
	} else {
		err = aggregate.Advance(cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = h.advanceMembers(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = consolidationRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h AdvanceConsolidationStatusCommandHandler) advanceMembers(
	ctx context.Context,
	uow ConsolidationUoW,
	aggregate *consolidation.Consolidation,
) error {
	switch aggregate.Status() {
	case consolidation.InTransit:
		return uow.OrderRepository().AdvanceMembers(ctx, aggregate.ID(), order.Consolidated, order.InTransit)
	case consolidation.Delivered:
		return uow.OrderRepository().AdvanceMembers(ctx, aggregate.ID(), order.InTransit, order.Delivered)
	default:
		return nil
	}
}
