package bankroll

import (
	"errors"
	"fmt"

	"github.com/etnz/bankroll/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result is the outcome of a bet.
type Result string

const (
	Win  Result = "win"
	Loss Result = "loss"
	Void Result = "void"
)

// Results lists all valid results, in display order.
var Results = []Result{Win, Loss, Void}

// ParseResult parses a result name. The empty string is Win, the default
// outcome of a new bet.
func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case "":
		return Win, nil
	case Win, Loss, Void:
		return Result(s), nil
	default:
		return "", fmt.Errorf("%w: %q want one of win, loss, void", ErrInvalidResult, s)
	}
}

// IsValid reports whether r is one of Win, Loss or Void.
func (r Result) IsValid() bool { return r == Win || r == Loss || r == Void }

// ErrInvalidBet is returned for a bet that breaks the record invariants.
var ErrInvalidBet = errors.New("invalid bet")

var one = decimal.NewFromInt(1)

// Bet is a single logged wager. Bets are values: once created they are never
// modified, the ledger only adds and removes them.
type Bet struct {
	ID     string
	Date   date.Date
	Odds   decimal.Decimal // decimal odds, always greater than 1
	Stake  decimal.Decimal // always positive
	Result Result
}

// NewID returns a fresh random identifier for a bet.
func NewID() string { return uuid.NewString() }

// Profit returns the net gain of the bet: stake*(odds-1) for a win, -stake for
// a loss and 0 for a void bet.
func (b Bet) Profit() decimal.Decimal {
	switch b.Result {
	case Win:
		return b.Stake.Mul(b.Odds.Sub(one))
	case Loss:
		return b.Stake.Neg()
	default:
		return decimal.Zero
	}
}

// Validate checks the record invariants.
func (b Bet) Validate() error {
	switch {
	case b.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidBet)
	case b.Date.IsZero():
		return fmt.Errorf("%w %s: missing date", ErrInvalidBet, b.ID)
	case !b.Odds.GreaterThan(one):
		return fmt.Errorf("%w %s: odds %s must be greater than 1", ErrInvalidBet, b.ID, b.Odds)
	case !b.Stake.IsPositive():
		return fmt.Errorf("%w %s: stake %s must be positive", ErrInvalidBet, b.ID, b.Stake)
	case !b.Result.IsValid():
		return fmt.Errorf("%w %s: unknown result %q", ErrInvalidBet, b.ID, b.Result)
	}
	return nil
}

// MarshalJSON writes the bet with a stable key order, odds and stake as JSON
// numbers.
func (b Bet) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("date", b.Date)
	w.Append("odds", b.Odds)
	w.Append("stake", b.Stake)
	w.Append("result", b.Result)
	return w.MarshalJSON()
}
