package accrual

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in the display currency of a Bank.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates Money from an exact decimal.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with the currency symbol and grouping.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Fixed returns the bare amount with exactly 2 decimals, as shown in statement columns.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }

// Add returns m plus an exact amount, in the same currency.
func (m Money) Add(n decimal.Decimal) Money { return Money{value: m.value.Add(n), cur: m.cur} }
