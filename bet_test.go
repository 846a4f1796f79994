package bankroll

import (
	"errors"
	"testing"

	"github.com/etnz/bankroll/date"
	"github.com/shopspring/decimal"
)

// bet is a test helper building a bet from literals.
func bet(id, on, odds, stake string, r Result) Bet {
	return Bet{
		ID:     id,
		Date:   date.MustParse(on),
		Odds:   decimal.RequireFromString(odds),
		Stake:  decimal.RequireFromString(stake),
		Result: r,
	}
}

func TestBet_Profit(t *testing.T) {
	testCases := []struct {
		name string
		bet  Bet
		want string
	}{
		{"win", bet("1", "2025-01-01", "2.00", "10", Win), "10"},
		{"win fractional", bet("2", "2025-01-01", "1.85", "20", Win), "17"},
		{"win small odds", bet("3", "2025-01-01", "1.01", "100", Win), "1"},
		{"loss", bet("4", "2025-01-01", "1.50", "20", Loss), "-20"},
		{"void", bet("5", "2025-01-01", "3.00", "50", Void), "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.bet.Profit()
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("Profit() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseResult(t *testing.T) {
	testCases := []struct {
		input   string
		want    Result
		wantErr bool
	}{
		{"", Win, false},
		{"win", Win, false},
		{"loss", Loss, false},
		{"void", Void, false},
		{"WIN", "", true},
		{"push", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseResult(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseResult(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidResult) {
			t.Errorf("ParseResult(%q) error = %v, want ErrInvalidResult", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseResult(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestBet_Validate(t *testing.T) {
	valid := bet("1", "2025-01-01", "2", "10", Win)
	testCases := []struct {
		name   string
		mutate func(*Bet)
		valid  bool
	}{
		{"valid", func(*Bet) {}, true},
		{"no id", func(b *Bet) { b.ID = "" }, false},
		{"no date", func(b *Bet) { b.Date = date.Date{} }, false},
		{"odds of 1", func(b *Bet) { b.Odds = decimal.NewFromInt(1) }, false},
		{"odds below 1", func(b *Bet) { b.Odds = decimal.RequireFromString("0.5") }, false},
		{"zero stake", func(b *Bet) { b.Stake = decimal.Zero }, false},
		{"negative stake", func(b *Bet) { b.Stake = decimal.NewFromInt(-5) }, false},
		{"unknown result", func(b *Bet) { b.Result = "push" }, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := valid
			tc.mutate(&b)
			err := b.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidBet) {
				t.Errorf("Validate() = %v, want ErrInvalidBet", err)
			}
		})
	}
}

func TestBet_MarshalJSON(t *testing.T) {
	b := bet("abc", "2025-01-02", "2.00", "10", Win)
	got, err := b.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"abc","date":"2025-01-02","odds":2,"stake":10,"result":"win"}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("NewID() returned an empty or duplicate id %q", id)
		}
		seen[id] = true
	}
}
