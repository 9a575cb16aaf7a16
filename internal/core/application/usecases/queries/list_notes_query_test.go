package queries_test

import (
	"testing"

	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/model/auth"
	"cargopool/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListNotesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewListNotesQuery(customerActor(t), orderID)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.True(t, query.OrderID().IsEqual(orderID))
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := queries.NewListNotesQuery(customerActor(t), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		_, err := queries.NewListNotesQuery(auth.Actor{}, kernel.NewUUID())

		require.Error(t, err)
	})
}

func TestListNotesQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.ListNotesQuery

	require.ErrorIs(t, query.Validate(), queries.ErrListNotesQueryIsNotConstructed)
}
