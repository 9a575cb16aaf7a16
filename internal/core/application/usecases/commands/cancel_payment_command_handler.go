package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// CancelPaymentCommandHandler voids payments. Cancelling frees the
// consolidation's one-active-payment slot, so a replacement payment can be
// created afterwards; it never resurrects order or consolidation state.
type CancelPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     services.AccessPolicy
}

// NewCancelPaymentCommandHandler creates a handler for payment cancellation.
func NewCancelPaymentCommandHandler(uowFactory PaymentUoWFactory, policy services.AccessPolicy) CancelPaymentCommandHandler {
	return CancelPaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the payment cancellation command.
func (h CancelPaymentCommandHandler) Handle(ctx context.Context, cmd CancelPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourcePayment, services.ActionCancel, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionCancel))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	consolidationRepo := uow.ConsolidationRepository()
	consolidationAggregate, err := consolidationRepo.Get(ctx, aggregate.ConsolidationID())
	if err != nil {
		return err
	}

	consolidationAggregate.MarkPaymentDetached()
	if err = consolidationRepo.Update(ctx, consolidationAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
