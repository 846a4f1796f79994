package bankroll

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value decimal.Decimal
		cur   string
		want  string
	}{
		{decimal.NewFromInt(110), "USD", "$110.00"},
		{decimal.RequireFromString("1234.5"), "USD", "$1,234.50"},
		{decimal.NewFromInt(-20), "USD", "-$20.00"},
		{decimal.RequireFromString("0.005"), "USD", "$0.01"},
		{decimal.RequireFromString("80"), "BRL", "R$80,00"},
	}
	for _, tc := range testCases {
		if got := M(tc.value, tc.cur).String(); got != tc.want {
			t.Errorf("M(%s, %s).String() = %q, want %q", tc.value, tc.cur, got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		value int
		want  string
	}{
		{10, "+$10.00"},
		{-20, "-$20.00"},
		{0, "-"},
	}
	for _, tc := range testCases {
		if got := M(tc.value, "USD").SignedString(); got != tc.want {
			t.Errorf("M(%d).SignedString() = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestMoney_Equal(t *testing.T) {
	a := M(decimal.RequireFromString("10.0"), "USD")
	if !a.Equal(M(10, "USD")) {
		t.Errorf("10.0 USD should equal 10 USD")
	}
	if a.Equal(M(10, "EUR")) {
		t.Errorf("10 USD should not equal 10 EUR")
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		p            Percent
		want, signed string
	}{
		{100, "100.00%", "+100.00%"},
		{-100, "-100.00%", "-100.00%"},
		{4, "4.00%", "+4.00%"},
		{0, "0.00%", "-"},
		{-0.001, "-0.00%", "-"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.want)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.signed)
		}
	}
	if !Percent(33.33333).Equal(33.33334) {
		t.Errorf("Percent.Equal should tolerate rounding noise")
	}
}
