package queries_test

import (
	"testing"

	"cargopool/internal/core/application/usecases/queries"
	"cargopool/internal/core/domain/model/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuggestEligibleOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewSuggestEligibleOrdersQuery(adminActor(t))

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		_, err := queries.NewSuggestEligibleOrdersQuery(auth.Actor{})

		require.Error(t, err)
	})
}

func TestSuggestEligibleOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.SuggestEligibleOrdersQuery

	require.ErrorIs(t, query.Validate(), queries.ErrSuggestEligibleOrdersQueryIsNotConstructed)
}
