package bankroll

import (
	"errors"

	"github.com/etnz/bankroll/date"
)

// Validation errors, in the order the form checks them.
var (
	ErrDateRequired  = errors.New("fill in the date")
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidOdds   = errors.New("odds must be greater than 1.00")
	ErrInvalidStake  = errors.New("stake must be greater than 0")
	ErrInvalidResult = errors.New("result must be win, loss or void")
)

// Form holds the raw input of a new bet, as typed by the user.
type Form struct {
	Date   string
	Odds   string
	Stake  string
	Result string
}

// NewForm returns a form with the default values: today, odds 2.00, stake 10
// and a win.
func NewForm() Form {
	return Form{
		Date:   date.Today().String(),
		Odds:   "2.00",
		Stake:  "10",
		Result: string(Win),
	}
}

// Bet validates the form and builds the new bet, its id obtained from newID.
//
// Checks stop at the first failure: date, odds, stake, then result.
// The returned error is one of the validation errors above.
func (f Form) Bet(newID func() string) (Bet, error) {
	if f.Date == "" {
		return Bet{}, ErrDateRequired
	}
	on, err := date.Parse(f.Date)
	if err != nil {
		return Bet{}, ErrInvalidDate
	}
	odds, ok := ParseAmount(f.Odds)
	if !ok || !odds.GreaterThan(one) {
		return Bet{}, ErrInvalidOdds
	}
	stake, ok := ParseAmount(f.Stake)
	if !ok || !stake.IsPositive() {
		return Bet{}, ErrInvalidStake
	}
	result, err := ParseResult(f.Result)
	if err != nil {
		return Bet{}, ErrInvalidResult
	}
	return Bet{
		ID:     newID(),
		Date:   on,
		Odds:   odds,
		Stake:  stake,
		Result: result,
	}, nil
}
