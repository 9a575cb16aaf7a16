package services_test

import (
	"testing"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, customerID kernel.UUID) auth.Actor {
	t.Helper()
	a, err := auth.NewCustomerActor(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	return a
}

func newSupplier(t *testing.T, supplierID kernel.UUID) auth.Actor {
	t.Helper()
	a, err := auth.NewSupplierActor(kernel.NewUUID(), supplierID)
	require.NoError(t, err)
	return a
}

func newAdmin(t *testing.T) auth.Actor {
	t.Helper()
	a, err := auth.NewAdminActor(kernel.NewUUID())
	require.NoError(t, err)
	return a
}

func TestAccessPolicy_IsAllowed(t *testing.T) {
	policy := services.NewAccessPolicy()
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	orderOwner := services.OwnedBy(&customerID, &supplierID)

	t.Run("admin satisfies every defined check", func(t *testing.T) {
		admin := newAdmin(t)

		assert.True(t, policy.IsAllowed(admin, services.ResourceOrder, services.ActionMarkPaid, orderOwner))
		assert.True(t, policy.IsAllowed(admin, services.ResourceConsolidation, services.ActionCreate, services.AnyOwner()))
		assert.True(t, policy.IsAllowed(admin, services.ResourcePayment, services.ActionCancel, services.AnyOwner()))
	})

	t.Run("customer may cancel own order only", func(t *testing.T) {
		owner := newCustomer(t, customerID)
		stranger := newCustomer(t, kernel.NewUUID())

		assert.True(t, policy.IsAllowed(owner, services.ResourceOrder, services.ActionCancel, orderOwner))
		assert.False(t, policy.IsAllowed(stranger, services.ResourceOrder, services.ActionCancel, orderOwner))
	})

	t.Run("supplier may confirm own order only", func(t *testing.T) {
		owner := newSupplier(t, supplierID)
		stranger := newSupplier(t, kernel.NewUUID())

		assert.True(t, policy.IsAllowed(owner, services.ResourceOrder, services.ActionConfirm, orderOwner))
		assert.False(t, policy.IsAllowed(stranger, services.ResourceOrder, services.ActionConfirm, orderOwner))
	})

	t.Run("role not in policy entry is denied regardless of ownership", func(t *testing.T) {
		customer := newCustomer(t, customerID)
		supplier := newSupplier(t, supplierID)

		assert.False(t, policy.IsAllowed(customer, services.ResourceOrder, services.ActionConfirm, orderOwner))
		assert.False(t, policy.IsAllowed(supplier, services.ResourceOrder, services.ActionCancel, orderOwner))
		assert.False(t, policy.IsAllowed(supplier, services.ResourceOrder, services.ActionMarkPaid, orderOwner))
		assert.False(t, policy.IsAllowed(customer, services.ResourceConsolidation, services.ActionCreate, services.AnyOwner()))
	})

	t.Run("open ownership skips the party check", func(t *testing.T) {
		customer := newCustomer(t, kernel.NewUUID())

		assert.True(t, policy.IsAllowed(customer, services.ResourceOrder, services.ActionRead, services.AnyOwner()))
	})

	t.Run("unconstructed actor is denied", func(t *testing.T) {
		var actor auth.Actor

		assert.False(t, policy.IsAllowed(actor, services.ResourceOrder, services.ActionRead, services.AnyOwner()))
	})

	t.Run("panics on undefined pair", func(t *testing.T) {
		assert.Panics(t, func() {
			policy.IsAllowed(newAdmin(t), services.ResourcePayment, services.Action("refund"), services.AnyOwner())
		})
	})
}

func TestOrderTransitionAction(t *testing.T) {
	for target, want := range map[order.Status]services.Action{
		order.Confirmed:             services.ActionConfirm,
		order.Invoiced:              services.ActionInvoice,
		order.Paid:                  services.ActionMarkPaid,
		order.ShippedToWarehouse:    services.ActionReceiveAtWarehouse,
		order.ReadyForConsolidation: services.ActionMarkReady,
		order.Cancelled:             services.ActionCancel,
	} {
		got, err := services.OrderTransitionAction(target)
		require.NoError(t, err, target.String())
		assert.Equal(t, want, got)
	}

	t.Run("no direct action for consolidation-driven statuses", func(t *testing.T) {
		for _, target := range []order.Status{order.Consolidated, order.InTransit, order.Delivered, order.Pending} {
			_, err := services.OrderTransitionAction(target)
			require.Error(t, err, target.String())
		}
	})
}
