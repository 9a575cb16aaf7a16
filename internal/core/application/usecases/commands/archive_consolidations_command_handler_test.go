package commands_test

import (
	"testing"
	"time"

	"cargopool/internal/core/application/usecases/commands"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredConsolidation(t *testing.T) *consolidation.Consolidation {
	t.Helper()
	c := emptyConsolidation(t)
	require.NoError(t, c.SetTrackingNumber("TRK-1"))
	for _, s := range []consolidation.Status{
		consolidation.Consolidating, consolidation.ReadyToShip,
		consolidation.InTransit, consolidation.Delivered,
	} {
		require.NoError(t, c.Advance(s))
	}
	return c
}

func TestArchiveConsolidationsCommandHandler_Handle_ArchivesAndDetaches(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(time.Hour)
	cmd, err := commands.NewArchiveConsolidationsCommand(cutoff)
	require.NoError(t, err)

	first := deliveredConsolidation(t)
	second := deliveredConsolidation(t)

	consolidationRepo := new(MockConsolidationRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		consolidationRepo.On("GetDeliveredBefore", mock.Anything, cutoff).
			Return([]*consolidation.Consolidation{first, second}, nil).Once(),
		orderRepo.On("DetachDelivered", mock.Anything, first.ID()).Return(nil).Once(),
		consolidationRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		orderRepo.On("DetachDelivered", mock.Anything, second.ID()).Return(nil).Once(),
		consolidationRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveConsolidationsCommandHandler(factory)
	archived, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, archived)
	assert.True(t, first.IsArchived())
	assert.True(t, second.IsArchived())
}

func TestArchiveConsolidationsCommandHandler_Handle_NothingToArchive(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC()
	cmd, err := commands.NewArchiveConsolidationsCommand(cutoff)
	require.NoError(t, err)

	consolidationRepo := new(MockConsolidationRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		consolidationRepo.On("GetDeliveredBefore", mock.Anything, cutoff).
			Return([]*consolidation.Consolidation{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConsolidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveConsolidationsCommandHandler(factory)
	archived, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, archived)
}

func TestNewArchiveConsolidationsCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewArchiveConsolidationsCommand(time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
