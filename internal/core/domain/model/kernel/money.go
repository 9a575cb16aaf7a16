package kernel

import (
	"fmt"

	"cargopool/internal/pkg/errs"
	"cargopool/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money instance was not created
// through NewMoney or MoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromString")

// Currency is an ISO 4217 style currency code, e.g. "USD".
type Currency string

// Money is an immutable fixed-point monetary value with a currency.
// Amounts are held as exact decimals, never floats, so aggregate sums and
// payment snapshots round-trip without drift. Negative amounts are rejected
// at construction; arithmetic across different currencies is an error.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(100), "USD")
//	if err != nil {
//	    return err
//	}
//	total, _ := price.Add(price) // 200 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency code must be non-empty.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "100.00" into a Money
// value. Used when reconstructing amounts from persistence or external input.
func MoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns a zero amount in the given currency.
// Useful as the seed of aggregate summation.
func ZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two Money values.
// Returns an error if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency))
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// IsEqual reports whether two Money values carry the same amount and
// currency. Amounts compare by numeric value, so "100" equals "100.00".
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the value as "100.00 USD" with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
