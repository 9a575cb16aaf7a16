package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// RemoveOrdersFromConsolidationCommandHandler releases member orders from a
// consolidation back to ReadyForConsolidation and recomputes the aggregates
// from the remaining membership.
type RemoveOrdersFromConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveOrdersFromConsolidationCommandHandler creates a handler for
// membership removals.
func NewRemoveOrdersFromConsolidationCommandHandler(
	uowFactory ConsolidationUoWFactory,
	policy services.AccessPolicy,
) RemoveOrdersFromConsolidationCommandHandler {
	return RemoveOrdersFromConsolidationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the membership removal command.
func (h RemoveOrdersFromConsolidationCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveOrdersFromConsolidationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceConsolidation, services.ActionRemoveOrders, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionRemoveOrders))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := consolidationRepo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}
	if err = aggregate.EnsureMembershipOpen(); err != nil {
		return err
	}

	for _, orderID := range cmd.OrderIDs() {
		if err = orderRepo.ReleaseFromConsolidation(ctx, orderID, aggregate.ID()); err != nil {
			return err
		}
	}

	members, err := orderRepo.GetMembers(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if err = aggregate.RecomputeAggregates(members); err != nil {
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
