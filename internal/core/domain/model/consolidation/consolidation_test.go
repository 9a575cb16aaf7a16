package consolidation_test

import (
	"testing"
	"time"

	"cargopool/internal/core/domain/model/consolidation"
	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/core/domain/model/order"
	"cargopool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyConsolidation(t *testing.T) *consolidation.Consolidation {
	t.Helper()
	c, err := consolidation.NewConsolidation(kernel.NewUUID(), "EU week 34")
	require.NoError(t, err)
	return c
}

// claimedOrder builds an order in Consolidated status referencing the given
// consolidation, with the given price and weight.
func claimedOrder(t *testing.T, c *consolidation.Consolidation, amount string, weight int) *order.Order {
	t.Helper()
	return claimedOrderForParties(t, c, amount, weight, kernel.NewUUID(), kernel.NewUUID())
}

func claimedOrderForParties(
	t *testing.T,
	c *consolidation.Consolidation,
	amount string,
	weight int,
	customerID kernel.UUID,
	supplierID kernel.UUID,
) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, supplierID, price, 1, weight)
	require.NoError(t, err)
	for _, s := range []order.Status{
		order.Confirmed, order.Invoiced, order.Paid,
		order.ShippedToWarehouse, order.ReadyForConsolidation,
	} {
		require.NoError(t, o.TransitionTo(s))
	}
	require.NoError(t, o.ClaimFor(c.ID()))
	return o
}

func TestNewConsolidation(t *testing.T) {
	t.Run("should create pending consolidation with zero aggregates", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := consolidation.NewConsolidation(id, "EU week 34")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "EU week 34", c.Name())
		assert.Equal(t, consolidation.Pending, c.Status())
		assert.Empty(t, c.MemberIDs())
		assert.Equal(t, 0, c.Aggregates().TotalWeight)
		assert.Equal(t, 0, c.Aggregates().SupplierCount)
		assert.Equal(t, "0.00 USD", c.Aggregates().TotalValue.String())
		assert.Nil(t, c.ShippedAt())
		assert.Nil(t, c.TrackingNumber())
		assert.False(t, c.HasPayment())
		assert.False(t, c.IsArchived())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := consolidation.NewConsolidation(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := consolidation.NewConsolidation(zero, "EU week 34")

		require.Error(t, err)
	})
}

func TestConsolidation_RecomputeAggregates(t *testing.T) {
	t.Run("computes totals and distinct counts from membership", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		sharedCustomer := kernel.NewUUID()

		o1 := claimedOrderForParties(t, c, "100.00", 10, sharedCustomer, kernel.NewUUID())
		o2 := claimedOrderForParties(t, c, "49.50", 5, sharedCustomer, kernel.NewUUID())
		o3 := claimedOrder(t, c, "0.50", 1)

		require.NoError(t, c.RecomputeAggregates([]*order.Order{o1, o2, o3}))

		agg := c.Aggregates()
		assert.Equal(t, 16, agg.TotalWeight)
		assert.Equal(t, "150.00 USD", agg.TotalValue.String())
		assert.Equal(t, 3, agg.SupplierCount)
		assert.Equal(t, 2, agg.CustomerCount)
		assert.Len(t, c.MemberIDs(), 3)
		assert.True(t, c.HasMember(o1.ID()))
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		members := []*order.Order{claimedOrder(t, c, "10", 2), claimedOrder(t, c, "20", 3)}

		require.NoError(t, c.RecomputeAggregates(members))
		first := c.Aggregates()

		require.NoError(t, c.RecomputeAggregates(members))
		second := c.Aggregates()

		assert.Equal(t, first.TotalWeight, second.TotalWeight)
		assert.True(t, first.TotalValue.IsEqual(second.TotalValue))
		assert.Equal(t, first.SupplierCount, second.SupplierCount)
		assert.Equal(t, first.CustomerCount, second.CustomerCount)
	})

	t.Run("empty membership resets totals", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.RecomputeAggregates([]*order.Order{claimedOrder(t, c, "10", 2)}))

		require.NoError(t, c.RecomputeAggregates(nil))

		assert.Empty(t, c.MemberIDs())
		assert.Equal(t, 0, c.Aggregates().TotalWeight)
		assert.Equal(t, "0.00 USD", c.Aggregates().TotalValue.String())
	})

	t.Run("member ids are sorted deterministically", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		members := []*order.Order{
			claimedOrder(t, c, "1", 1),
			claimedOrder(t, c, "1", 1),
			claimedOrder(t, c, "1", 1),
		}

		require.NoError(t, c.RecomputeAggregates(members))

		ids := c.MemberIDs()
		for i := 1; i < len(ids); i++ {
			assert.True(t, ids[i-1].Less(ids[i]))
		}
	})

	t.Run("rejects order referencing another consolidation", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		other := newEmptyConsolidation(t)
		stranger := claimedOrder(t, other, "10", 1)

		err := c.RecomputeAggregates([]*order.Order{stranger})

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects recompute once delivered", func(t *testing.T) {
		c := deliveredConsolidation(t)

		err := c.RecomputeAggregates(nil)

		require.ErrorIs(t, err, errs.ErrImmutable)
	})
}

func deliveredConsolidation(t *testing.T) *consolidation.Consolidation {
	t.Helper()
	c := newEmptyConsolidation(t)
	require.NoError(t, c.SetTrackingNumber("TRK-123"))
	for _, s := range []consolidation.Status{
		consolidation.Consolidating, consolidation.ReadyToShip,
		consolidation.InTransit, consolidation.Delivered,
	} {
		require.NoError(t, c.Advance(s))
	}
	return c
}

func TestConsolidation_Advance(t *testing.T) {
	t.Run("advances single steps to delivered", func(t *testing.T) {
		c := deliveredConsolidation(t)

		assert.Equal(t, consolidation.Delivered, c.Status())
		require.NotNil(t, c.ShippedAt())
	})

	t.Run("refuses dispatch without tracking number", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.Advance(consolidation.Consolidating))
		require.NoError(t, c.Advance(consolidation.ReadyToShip))

		err := c.Advance(consolidation.InTransit)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("refuses skipping states", func(t *testing.T) {
		c := newEmptyConsolidation(t)

		err := c.Advance(consolidation.ReadyToShip)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestConsolidation_SetTrackingNumber(t *testing.T) {
	t.Run("sets non-empty tracking number", func(t *testing.T) {
		c := newEmptyConsolidation(t)

		require.NoError(t, c.SetTrackingNumber("TRK-9"))

		require.NotNil(t, c.TrackingNumber())
		assert.Equal(t, "TRK-9", *c.TrackingNumber())
	})

	t.Run("rejects empty value", func(t *testing.T) {
		c := newEmptyConsolidation(t)

		require.ErrorIs(t, c.SetTrackingNumber(""), errs.ErrValueIsRequired)
	})

	t.Run("rejects change after dispatch", func(t *testing.T) {
		c := deliveredConsolidation(t)

		require.ErrorIs(t, c.SetTrackingNumber("TRK-10"), errs.ErrImmutable)
	})
}

func TestConsolidation_Cancel(t *testing.T) {
	t.Run("cancels empty pending consolidation", func(t *testing.T) {
		c := newEmptyConsolidation(t)

		require.NoError(t, c.Cancel())
		assert.Equal(t, consolidation.Cancelled, c.Status())
	})

	t.Run("refuses cancel with members attached", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.RecomputeAggregates([]*order.Order{claimedOrder(t, c, "10", 1)}))

		require.ErrorIs(t, c.Cancel(), errs.ErrConflict)
	})

	t.Run("refuses cancel once ready to ship", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.Advance(consolidation.Consolidating))
		require.NoError(t, c.Advance(consolidation.ReadyToShip))

		require.ErrorIs(t, c.Cancel(), errs.ErrInvalidTransition)
	})
}

func TestConsolidation_EnsureMembershipOpen(t *testing.T) {
	t.Run("open while pending and consolidating", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.EnsureMembershipOpen())

		require.NoError(t, c.Advance(consolidation.Consolidating))
		require.NoError(t, c.EnsureMembershipOpen())
	})

	t.Run("conflict once ready to ship", func(t *testing.T) {
		c := newEmptyConsolidation(t)
		require.NoError(t, c.Advance(consolidation.Consolidating))
		require.NoError(t, c.Advance(consolidation.ReadyToShip))

		require.ErrorIs(t, c.EnsureMembershipOpen(), errs.ErrConflict)
	})

	t.Run("immutable once delivered", func(t *testing.T) {
		c := deliveredConsolidation(t)

		require.ErrorIs(t, c.EnsureMembershipOpen(), errs.ErrImmutable)
	})
}

func TestConsolidation_Archive(t *testing.T) {
	t.Run("archives delivered consolidation past retention", func(t *testing.T) {
		c := deliveredConsolidation(t)

		require.NoError(t, c.Archive(time.Now().UTC().Add(time.Hour)))
		assert.True(t, c.IsArchived())
	})

	t.Run("refuses archive before retention cutoff", func(t *testing.T) {
		c := deliveredConsolidation(t)

		err := c.Archive(time.Now().UTC().Add(-24 * time.Hour))

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("refuses archive of undelivered consolidation", func(t *testing.T) {
		c := newEmptyConsolidation(t)

		require.ErrorIs(t, c.Archive(time.Now().UTC()), errs.ErrInvalidTransition)
	})
}

func TestConsolidation_PaymentFlag(t *testing.T) {
	c := newEmptyConsolidation(t)

	c.MarkPaymentAttached()
	assert.True(t, c.HasPayment())

	c.MarkPaymentDetached()
	assert.False(t, c.HasPayment())
}
