package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a positive monetary value rounded to two decimal places.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates a raw numeric value and returns an Amount.
func NewAmount(value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, ErrAmountNotANumber
	}
	return NewAmountFromDecimal(decimal.NewFromFloat(value))
}

// NewAmountFromDecimal validates an already-decimal value, as read back from
// a store.
func NewAmountFromDecimal(value decimal.Decimal) (Amount, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Amount{}, ErrAmountNotPositive
	}
	return Amount{value: value.Round(2)}, nil
}

// Decimal returns the wrapped value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the wrapped value as a float64.
func (a Amount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount with exactly two decimal places.
func (a Amount) String() string {
	return a.value.StringFixed(2)
}
