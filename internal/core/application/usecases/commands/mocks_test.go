package commands_test

import (
	"context"
	"testing"
	"time"

	"cargopool/internal/core/application/usecases/commands"
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/note"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/model/payment"
	"cargopool/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Transition(ctx context.Context, id kernel.UUID, from order.Status, to order.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) ClaimForConsolidation(ctx context.Context, orderID kernel.UUID, consolidationID kernel.UUID) error {
	args := m.Called(ctx, orderID, consolidationID)
	return args.Error(0)
}

func (m *MockOrderRepository) ReleaseFromConsolidation(ctx context.Context, orderID kernel.UUID, consolidationID kernel.UUID) error {
	args := m.Called(ctx, orderID, consolidationID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetMembers(ctx context.Context, consolidationID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, consolidationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AdvanceMembers(ctx context.Context, consolidationID kernel.UUID, from order.Status, to order.Status) error {
	args := m.Called(ctx, consolidationID, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) DetachDelivered(ctx context.Context, consolidationID kernel.UUID) error {
	args := m.Called(ctx, consolidationID)
	return args.Error(0)
}

type MockConsolidationRepository struct{ mock.Mock }

func (m *MockConsolidationRepository) Add(ctx context.Context, c *consolidation.Consolidation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsolidationRepository) Update(ctx context.Context, c *consolidation.Consolidation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}

func (m *MockConsolidationRepository) GetDeliveredBefore(ctx context.Context, cutoff time.Time) ([]*consolidation.Consolidation, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*consolidation.Consolidation), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) AddIfNoActive(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) HasActiveByConsolidation(ctx context.Context, consolidationID kernel.UUID) (bool, error) {
	args := m.Called(ctx, consolidationID)
	return args.Bool(0), args.Error(1)
}

type MockNoteRepository struct{ mock.Mock }

func (m *MockNoteRepository) Add(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) Update(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNoteRepository) Get(ctx context.Context, id kernel.UUID) (*note.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every unit of work interface of the package so a single
// mock serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ConsolidationRepository() ports.ConsolidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) NoteRepository() ports.NoteRepository {
	args := m.Called()
	return args.Get(0).(ports.NoteRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockConsolidationUoWFactory struct{ mock.Mock }

func (m *MockConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsolidationUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockNoteUoWFactory struct{ mock.Mock }

func (m *MockNoteUoWFactory) Create() commands.NoteUoW {
	args := m.Called()
	return args.Get(0).(commands.NoteUoW)
}

func adminActor(t *testing.T) auth.Actor {
	t.Helper()
	a, err := auth.NewAdminActor(kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func customerActor(t *testing.T, customerID kernel.UUID) auth.Actor {
	t.Helper()
	a, err := auth.NewCustomerActor(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	return a
}

func supplierActor(t *testing.T, supplierID kernel.UUID) auth.Actor {
	t.Helper()
	a, err := auth.NewSupplierActor(kernel.NewUUID(), supplierID)
	require.NoError(t, err)
	return a
}

func testMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

// orderInStatus builds an order advanced to the given status.
func orderInStatus(t *testing.T, customerID kernel.UUID, supplierID kernel.UUID, target order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, supplierID, testMoney(t, "100.00"), 1, 10)
	require.NoError(t, err)
	for _, s := range []order.Status{
		order.Confirmed, order.Invoiced, order.Paid,
		order.ShippedToWarehouse, order.ReadyForConsolidation,
	} {
		if o.Status() == target {
			break
		}
		require.NoError(t, o.TransitionTo(s))
	}
	return o
}

func memberOrder(t *testing.T, consolidationID kernel.UUID) *order.Order {
	t.Helper()
	o := orderInStatus(t, kernel.NewUUID(), kernel.NewUUID(), order.ReadyForConsolidation)
	require.NoError(t, o.ClaimFor(consolidationID))
	return o
}

func emptyConsolidation(t *testing.T) *consolidation.Consolidation {
	t.Helper()
	c, err := consolidation.NewConsolidation(kernel.NewUUID(), "EU week 34")
	require.NoError(t, err)
	return c
}
