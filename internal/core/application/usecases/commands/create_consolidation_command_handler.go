package commands

import (
	"context"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// CreateConsolidationCommandHandler builds a new consolidation from a
// selection of eligible orders.
//
// Each selected order is claimed with a conditional write against its stored
// status and consolidation reference, in ascending id order. Two concurrent
// aggregations over overlapping selections therefore claim in the same
// sequence, and for any single order exactly one of them succeeds; the loser
// fails with OrderNotEligible and its transaction rolls back without leaving
// partial membership behind.
type CreateConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
	policy     services.AccessPolicy
}

// NewCreateConsolidationCommandHandler creates a handler for consolidation
// creation.
func NewCreateConsolidationCommandHandler(
	uowFactory ConsolidationUoWFactory,
	policy services.AccessPolicy,
) CreateConsolidationCommandHandler {
	return CreateConsolidationCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the consolidation creation command.
func (h CreateConsolidationCommandHandler) Handle(ctx context.Context, cmd CreateConsolidationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceConsolidation, services.ActionCreate, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionCreate))
	}

	aggregate, err := consolidation.NewConsolidation(cmd.ConsolidationID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	orderRepo := uow.OrderRepository()

	if err = consolidationRepo.Add(ctx, aggregate); err != nil {
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
