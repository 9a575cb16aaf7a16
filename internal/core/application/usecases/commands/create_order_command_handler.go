package commands

import (
	"context"

	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start in Pending status and belong to the customer named in the
// command; a customer actor may only place orders for itself.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order placement command.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customerID := cmd.CustomerID()
	if !h.policy.IsAllowed(cmd.Actor(), services.ResourceOrder, services.ActionCreate,
		services.OwnedBy(&customerID, nil)) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionCreate))
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.SupplierID(),
		cmd.Price(), cmd.ItemCount(), cmd.Weight(),
	)
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
