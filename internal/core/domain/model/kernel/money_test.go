package kernel_test

import (
	"testing"

	"cargopool/internal/core/domain/model/kernel"
	"cargopool/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create valid money", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(100), "USD")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, kernel.Currency("USD"), m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero, "EUR")

		require.NoError(t, err)
		assert.Equal(t, "0.00 EUR", m.String())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), "USD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("100.00", "USD")

		require.NoError(t, err)
		assert.Equal(t, "100.00 USD", m.String())
	})

	t.Run("should fail on garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten dollars", "USD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum same-currency values", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("100.50", "USD")
		b, _ := kernel.MoneyFromString("49.50", "USD")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, "150.00 USD", sum.String())
	})

	t.Run("should fail across currencies", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("1", "USD")
		b, _ := kernel.MoneyFromString("1", "EUR")

		_, err := a.Add(b)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("1", "USD")
		var zero kernel.Money

		_, err := a.Add(zero)

		require.Error(t, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("compares by numeric value", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("100", "USD")
		b, _ := kernel.MoneyFromString("100.00", "USD")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("differs by currency", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("100", "USD")
		b, _ := kernel.MoneyFromString("100", "EUR")

		assert.False(t, a.IsEqual(b))
	})
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}
