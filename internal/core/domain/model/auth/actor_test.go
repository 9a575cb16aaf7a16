package auth_test

import (
	"testing"

	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomerActor(t *testing.T) {
	t.Run("should create customer actor with owned record", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		actor, err := auth.NewCustomerActor(id, customerID)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, auth.RoleCustomer, actor.Role())
		assert.True(t, actor.ID().IsEqual(id))
		require.NotNil(t, actor.CustomerID())
		assert.True(t, actor.CustomerID().IsEqual(customerID))
		assert.Nil(t, actor.SupplierID())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("should fail without customer record", func(t *testing.T) {
		var zero kernel.UUID

		_, err := auth.NewCustomerActor(kernel.NewUUID(), zero)

		require.Error(t, err)
	})
}

func TestNewSupplierActor(t *testing.T) {
	id := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	actor, err := auth.NewSupplierActor(id, supplierID)

	require.NoError(t, err)
	assert.Equal(t, auth.RoleSupplier, actor.Role())
	require.NotNil(t, actor.SupplierID())
	assert.True(t, actor.SupplierID().IsEqual(supplierID))
	assert.Nil(t, actor.CustomerID())
}

func TestNewAdminActor(t *testing.T) {
	t.Run("should create admin actor without party record", func(t *testing.T) {
		actor, err := auth.NewAdminActor(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.IsAdmin())
		assert.Nil(t, actor.CustomerID())
		assert.Nil(t, actor.SupplierID())
	})

	t.Run("should fail with invalid identity", func(t *testing.T) {
		var zero kernel.UUID

		_, err := auth.NewAdminActor(zero)

		require.Error(t, err)
	})
}

func TestActor_Ownership(t *testing.T) {
	customerID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	customer, _ := auth.NewCustomerActor(kernel.NewUUID(), customerID)
	supplier, _ := auth.NewSupplierActor(kernel.NewUUID(), supplierID)
	admin, _ := auth.NewAdminActor(kernel.NewUUID())

	assert.True(t, customer.OwnsCustomer(customerID))
	assert.False(t, customer.OwnsCustomer(kernel.NewUUID()))
	assert.False(t, customer.OwnsSupplier(supplierID))

	assert.True(t, supplier.OwnsSupplier(supplierID))
	assert.False(t, supplier.OwnsSupplier(kernel.NewUUID()))
	assert.False(t, supplier.OwnsCustomer(customerID))

	// Admin ownership is never checked through these predicates; the policy
	// table grants admin every action directly.
	assert.False(t, admin.OwnsCustomer(customerID))
	assert.False(t, admin.OwnsSupplier(supplierID))
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var actor auth.Actor

		require.ErrorIs(t, actor.Validate(), auth.ErrActorIsNotConstructed)
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, auth.RoleCustomer.Validate())
	require.NoError(t, auth.RoleSupplier.Validate())
	require.NoError(t, auth.RoleAdmin.Validate())
	require.Error(t, auth.Role("manager").Validate())
}
