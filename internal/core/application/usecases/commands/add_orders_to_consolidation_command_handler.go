package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// AddOrdersToConsolidationCommandHandler claims additional eligible orders
// into an existing consolidation and recomputes its aggregates from the
// resulting membership.
type AddOrdersToConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	policy     services.AccessPolicy
}

// NewAddOrdersToConsolidationCommandHandler creates a handler for membership
// additions.
func NewAddOrdersToConsolidationCommandHandler(
	uowFactory ConsolidationUoWFactory,
	policy services.AccessPolicy,
) AddOrdersToConsolidationCommandHandler {
	return AddOrdersToConsolidationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the membership addition command.
func (h AddOrdersToConsolidationCommandHandler) Handle(ctx context.Context, cmd AddOrdersToConsolidationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceConsolidation, services.ActionAddOrders, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionAddOrders))
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
		if err = orderRepo.ClaimForConsolidation(ctx, orderID, aggregate.ID()); err != nil {
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
