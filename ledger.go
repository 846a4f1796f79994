package bankroll

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultInitialBankroll is the initial bankroll of a new ledger.
const DefaultInitialBankroll = 100

// ErrDuplicateID is returned when appending a bet whose id is already used.
var ErrDuplicateID = errors.New("duplicate bet id")

// Ledger is the list of logged bets, most recent first, together with the
// initial bankroll.
//
// A Ledger is a value: operations never modify it, they return the new
// ledger. The zero Ledger is empty with an initial bankroll of 0; use
// NewLedger for the default bankroll.
type Ledger struct {
	bets    []Bet
	initial decimal.Decimal
}

// NewLedger creates an empty ledger with the default initial bankroll.
func NewLedger() Ledger {
	return Ledger{initial: decimal.NewFromInt(DefaultInitialBankroll)}
}

// Len returns the number of bets.
func (l Ledger) Len() int { return len(l.bets) }

// Bets returns a copy of the bets, most recent first.
func (l Ledger) Bets() []Bet { return slices.Clone(l.bets) }

// All iterates over the bets, most recent first.
func (l Ledger) All() iter.Seq[Bet] { return slices.Values(l.bets) }

// InitialBankroll returns the capital the bankroll started with.
func (l Ledger) InitialBankroll() decimal.Decimal { return l.initial }

// Bet returns the bet with this id.
func (l Ledger) Bet(id string) (Bet, bool) {
	i := l.index(id)
	if i < 0 {
		return Bet{}, false
	}
	return l.bets[i], true
}

func (l Ledger) index(id string) int {
	return slices.IndexFunc(l.bets, func(b Bet) bool { return b.ID == id })
}

// Append returns the ledger with b at its head. b must be valid and its id
// unused, otherwise the ledger is returned unchanged with an error.
func (l Ledger) Append(b Bet) (Ledger, error) {
	if err := b.Validate(); err != nil {
		return l, err
	}
	if l.index(b.ID) >= 0 {
		return l, fmt.Errorf("%w: %q", ErrDuplicateID, b.ID)
	}
	bets := make([]Bet, 0, len(l.bets)+1)
	bets = append(bets, b)
	l.bets = append(bets, l.bets...)
	return l, nil
}

// Remove returns the ledger without the bet with this id. Removing an
// unknown id is a no-op.
func (l Ledger) Remove(id string) Ledger {
	if l.index(id) < 0 {
		return l
	}
	l.bets = slices.DeleteFunc(slices.Clone(l.bets), func(b Bet) bool { return b.ID == id })
	return l
}

// Clear returns the ledger with no bets. The initial bankroll is kept.
func (l Ledger) Clear() Ledger {
	l.bets = nil
	return l
}

// WithInitialBankroll returns the ledger with a new initial bankroll.
// NaN and infinities are stored as 0.
func (l Ledger) WithInitialBankroll(v float64) Ledger {
	l.initial = finite(v)
	return l
}

// Summary derives the statistics of the ledger.
func (l Ledger) Summary() Summary { return Summarize(l.bets, l.initial) }
