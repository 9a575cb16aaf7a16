package commands

import (
	"context"
)

// ArchiveConsolidationsCommandHandler retires delivered consolidations once
// the retention period has passed. Member orders are detached first, so a
// consolidation is never archived while orders still reference it.
type ArchiveConsolidationsCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewArchiveConsolidationsCommandHandler creates a handler for archival runs.
func NewArchiveConsolidationsCommandHandler(uowFactory ConsolidationUoWFactory) ArchiveConsolidationsCommandHandler {
	return ArchiveConsolidationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one archival run and returns the number of
// consolidations archived.
func (h ArchiveConsolidationsCommandHandler) Handle(ctx context.Context, cmd ArchiveConsolidationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consolidationRepo := uow.ConsolidationRepository()
	orderRepo := uow.OrderRepository()

	candidates, err := consolidationRepo.GetDeliveredBefore(ctx, cmd.RetentionCutoff())
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, aggregate := range candidates {
		if err = orderRepo.DetachDelivered(ctx, aggregate.ID()); err != nil {
			return 0, err
		}
		if err = aggregate.Archive(cmd.RetentionCutoff()); err != nil {
			return 0, err
		}
		if err = consolidationRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
		archived++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}
