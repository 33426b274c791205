package barista

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the single currency code used to format monetary values.
// The ledger itself is currency-less: every amount is in the vendor's one
// unit of account, and the currency only matters for display and for the
// number of fraction digits kept when persisting.
var DisplayCurrency = money.USD

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string (e.g. "4.00") into a Money.
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// currency returns the full display currency metadata.
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, DisplayCurrency).Currency()
}

// String returns the formatted representation of the money value (e.g. "$4.00").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Text returns the plain decimal representation used in the persisted tables,
// rounded to the display currency's fraction.
func (m Money) Text() string {
	return m.Round().value.StringFixed(int32(m.currency().Fraction))
}

// Round returns the money rounded to the display currency's fraction.
// This is the single rounding rule applied before any value is persisted,
// so repeated load/save cycles cannot drift.
func (m Money) Round() Money {
	return Money{value: m.value.Round(int32(m.currency().Fraction))}
}

func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Mul(n Quantity) Money { return Money{value: m.value.Mul(n.value)} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
