package commands

import (
	"context"

	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// MarkPaymentPaidCommandHandler completes pending payments.
type MarkPaymentPaidCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     services.AccessPolicy
}

// NewMarkPaymentPaidCommandHandler creates a handler for payment completion.
func NewMarkPaymentPaidCommandHandler(uowFactory PaymentUoWFactory, policy services.AccessPolicy) MarkPaymentPaidCommandHandler {
	return MarkPaymentPaidCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the payment completion command.
func (h MarkPaymentPaidCommandHandler) Handle(ctx context.Context, cmd MarkPaymentPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourcePayment, services.ActionMarkPaid, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionMarkPaid))
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

	if err = aggregate.MarkPaid(); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
