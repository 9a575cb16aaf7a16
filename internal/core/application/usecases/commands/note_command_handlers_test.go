package commands_test

import (
	"testing"

	"cargopool/internal/core/application/usecases/commands"
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/services"
	"cargopool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func noteOn(t *testing.T, orderID kernel.UUID, author auth.Actor) *note.Note {
	t.Helper()
	n, err := note.NewNote(kernel.NewUUID(), orderID, author, "customs hold", "missing invoice copy")
	require.NoError(t, err)
	return n
}

func TestCreateNoteCommandHandler_Handle_CustomerOnOwnOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	orderAggregate := orderInStatus(t, customerID, kernel.NewUUID(), order.Pending)
	cmd, err := commands.NewCreateNoteCommand(customerActor(t, customerID), kernel.NewUUID(),
		orderAggregate.ID(), "customs hold", "missing invoice copy")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("NoteRepository").Return(noteRepo).Once(),
		noteRepo.On("Add", mock.Anything, mock.AnythingOfType("*note.Note")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateNoteCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	noteRepo.AssertExpectations(t)
}

func TestCreateNoteCommandHandler_Handle_ForbiddenForForeignOrder(t *testing.T) {
	ctx := t.Context()
	orderAggregate := orderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.Pending)
	cmd, err := commands.NewCreateNoteCommand(customerActor(t, kernel.NewUUID()), kernel.NewUUID(),
		orderAggregate.ID(), "customs hold", "missing invoice copy")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateNoteCommandHandler(factory, services.NewAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	noteRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddReplyCommandHandler_Handle_SupplierReplies(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	orderAggregate := orderInStatus(t, kernel.NewUUID(), supplierID, order.Confirmed)
	noteAggregate := noteOn(t, orderAggregate.ID(), adminActor(t))
	cmd, err := commands.NewAddReplyCommand(supplierActor(t, supplierID), kernel.NewUUID(),
		noteAggregate.ID(), "invoice resent")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NoteRepository").Return(noteRepo).Once(),
		noteRepo.On("Get", mock.Anything, noteAggregate.ID()).Return(noteAggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderAggregate.ID()).Return(orderAggregate, nil).Once(),
		noteRepo.On("Update", mock.Anything, noteAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddReplyCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Len(t, noteAggregate.Replies(), 1)
	assert.Equal(t, "invoice resent", noteAggregate.Replies()[0].Body())
	assert.Equal(t, auth.RoleSupplier, noteAggregate.Replies()[0].AuthorRole())
}

func TestDeleteNoteCommandHandler_Handle_AuthorDeletes(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	author := customerActor(t, customerID)
	noteAggregate := noteOn(t, kernel.NewUUID(), author)
	cmd, err := commands.NewDeleteNoteCommand(author, noteAggregate.ID())
	require.NoError(t, err)

	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NoteRepository").Return(noteRepo).Once(),
		noteRepo.On("Get", mock.Anything, noteAggregate.ID()).Return(noteAggregate, nil).Once(),
		noteRepo.On("Delete", mock.Anything, noteAggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteNoteCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	noteRepo.AssertExpectations(t)
}

func TestDeleteNoteCommandHandler_Handle_NonAuthorForbidden(t *testing.T) {
	ctx := t.Context()
	noteAggregate := noteOn(t, kernel.NewUUID(), customerActor(t, kernel.NewUUID()))
	cmd, err := commands.NewDeleteNoteCommand(customerActor(t, kernel.NewUUID()), noteAggregate.ID())
	require.NoError(t, err)

	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NoteRepository").Return(noteRepo).Once(),
		noteRepo.On("Get", mock.Anything, noteAggregate.ID()).Return(noteAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteNoteCommandHandler(factory, services.NewAccessPolicy())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteReplyCommandHandler_Handle_AdminDeletesAnyReply(t *testing.T) {
	ctx := t.Context()
	author := customerActor(t, kernel.NewUUID())
	noteAggregate := noteOn(t, kernel.NewUUID(), author)
	reply, err := note.NewReply(kernel.NewUUID(), author, "checking")
	require.NoError(t, err)
	noteAggregate.AddReply(reply)

	cmd, err := commands.NewDeleteReplyCommand(adminActor(t), noteAggregate.ID(), reply.ID())
	require.NoError(t, err)

	noteRepo := new(MockNoteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NoteRepository").Return(noteRepo).Once(),
		noteRepo.On("Get", mock.Anything, noteAggregate.ID()).Return(noteAggregate, nil).Once(),
		noteRepo.On("Update", mock.Anything, noteAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteReplyCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Empty(t, noteAggregate.Replies())
}
