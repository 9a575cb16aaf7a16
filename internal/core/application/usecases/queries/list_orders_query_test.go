package queries_test

import (
	"testing"

	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerActor(t *testing.T) auth.Actor {
	t.Helper()
	actor, err := auth.NewCustomerActor(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func adminActor(t *testing.T) auth.Actor {
	t.Helper()
	actor, err := auth.NewAdminActor(kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("valid without filter", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(customerActor(t), nil)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Nil(t, query.StatusFilter())
	})

	t.Run("valid with status filter", func(t *testing.T) {
		status := order.Confirmed
		query, err := queries.NewListOrdersQuery(adminActor(t), &status)

		require.NoError(t, err)
		require.NotNil(t, query.StatusFilter())
		assert.Equal(t, order.Confirmed, *query.StatusFilter())
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(auth.Actor{}, nil)

		require.Error(t, err)
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		status := order.Unknown
		_, err := queries.NewListOrdersQuery(adminActor(t), &status)

		require.Error(t, err)
	})
}

func TestListOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.ListOrdersQuery

	require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
