package kernel

import (
	"fmt"

	"aquaflow/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing Money from a negative amount.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money is a non-negative amount of currency stored as integer cents.
// Prices and order totals use Money so arithmetic stays exact; the currency
// itself is implicit (single-currency business).
type Money struct {
	cents int64
}

// NewMoney creates Money from an amount in cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount scaled by a non-negative quantity.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidError("quantity cannot be negative")
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
