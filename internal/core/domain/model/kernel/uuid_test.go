package kernel_test

import (
	"sort"
	"testing"

	"cargopool/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("should fail on short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Less(t *testing.T) {
	t.Run("orders by canonical string", func(t *testing.T) {
		a, _ := kernel.UUIDFromString("11111111-1111-1111-1111-111111111111")
		b, _ := kernel.UUIDFromString("22222222-2222-2222-2222-222222222222")

		assert.True(t, a.Less(b))
		assert.False(t, b.Less(a))
		assert.False(t, a.Less(a))
	})

	t.Run("gives a deterministic sort", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
		sorted := make([]kernel.UUID, len(ids))
		copy(sorted, ids)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

		for i := 1; i < len(sorted); i++ {
			assert.True(t, sorted[i-1].String() < sorted[i].String())
		}
	})
}
