package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// TransitionOrderCommandHandler moves orders one step through their
// lifecycle.
//
// Each transition maps to its own action in the access policy, so the roles
// allowed to confirm an order differ from those allowed to mark it paid. The
// in-memory transition check gives precise typed errors; the repository then
// re-applies the same precondition as a conditional write, so a concurrent
// transition of the same order can never be double-applied.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the transition command.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	action, err := services.OrderTransitionAction(cmd.Target())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	customerID := aggregate.CustomerID()
	supplierID := aggregate.SupplierID()
	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceOrder, action,
		services.OwnedBy(&customerID, &supplierID)) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(action))
	}

	from := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Transition(ctx, cmd.OrderID(), from, cmd.Target()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
