package commands

import (
	"context"

	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"
)

// CreatePaymentCommandHandler opens a payment against a consolidation.
//
// The payment amount is a snapshot of the consolidation's total value at
// creation time; later membership changes never touch it. The insert is
// conditional on no other active payment existing for the consolidation, so
// two concurrent creations cannot both succeed.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	policy     services.AccessPolicy
}

// NewCreatePaymentCommandHandler creates a handler for payment creation.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory, policy services.AccessPolicy) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the payment creation command.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.IsAllowed(cmd.Actor(), services.ResourcePayment, services.ActionCreate, services.AnyOwner()) {
		return errs.NewForbiddenError(cmd.Actor().Role().String(), string(services.ActionCreate))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	consolidationAggregate, err := consolidationRepo.Get(ctx, cmd.ConsolidationID())
	if err != nil {
		return err
	}

	aggregate, err := payment.NewPayment(
		cmd.PaymentID(), consolidationAggregate.ID(),
		consolidationAggregate.Aggregates().TotalValue,
		cmd.Method(), cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().AddIfNoActive(ctx, aggregate); err != nil {
		return err
	}

	consolidationAggregate.MarkPaymentAttached()
	if err = consolidationRepo.Update(ctx, consolidationAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
