package bankroll

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, used to display bankroll figures.
type Money struct {
	value decimal.Decimal // major unit
	cur   string
}

// M returns value in currency cur (an ISO 4217 code such as "BRL").
func M[T float64 | int | int64 | decimal.Decimal](value T, cur string) Money {
	return Money{value: newDecimal(value), cur: cur}
}

// currency never returns nil: go-money builds a default for unknown codes
// when going through its constructor.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency symbol and its number of
// fraction digits, rounding half away from zero.
func (m Money) String() string {
	cur := m.currency()
	units := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(units.IntPart())
}

// SignedString is String with an explicit sign; zero is "-".
func (m Money) SignedString() string {
	switch {
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
