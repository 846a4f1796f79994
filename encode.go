package bankroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/bankroll/date"
	"github.com/shopspring/decimal"
)

// ErrCorruptData is returned when persisted data cannot be decoded.
var ErrCorruptData = errors.New("corrupt data")

// betCmd is the persisted shape of a bet, used for decoding.
type betCmd struct {
	ID     string          `json:"id"`
	Date   date.Date       `json:"date"`
	Odds   decimal.Decimal `json:"odds"`
	Stake  decimal.Decimal `json:"stake"`
	Result Result          `json:"result"`
}

// EncodeBets writes bets as a single JSON array, e.g.
//
//	[{"id":"…","date":"2025-01-02","odds":2,"stake":10,"result":"win"}]
//
// No bets are written as [].
func EncodeBets(w io.Writer, bets []Bet) error {
	if bets == nil {
		bets = []Bet{}
	}
	data, err := json.Marshal(bets)
	if err != nil {
		return fmt.Errorf("failed to marshal bets: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write bets: %w", err)
	}
	return nil
}

// DecodeBets reads a JSON array of bets as written by EncodeBets.
//
// A document that is not a JSON array is an error wrapping ErrCorruptData
// and no bet is returned. Otherwise records that cannot be decoded, break
// the record invariants or repeat an earlier id are skipped: the remaining
// bets are returned along with an error listing the skipped records.
func DecodeBets(r io.Reader) ([]Bet, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: bets are not a JSON array: %v", ErrCorruptData, err)
	}

	bets := make([]Bet, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	var errs []error
	for i, raw := range raws {
		var cmd betCmd
		if err := json.Unmarshal(raw, &cmd); err != nil {
			errs = append(errs, fmt.Errorf("%w: record %d: %v", ErrCorruptData, i, err))
			continue
		}
		b := Bet(cmd)
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if seen[b.ID] {
			errs = append(errs, fmt.Errorf("record %d: %w: %q", i, ErrDuplicateID, b.ID))
			continue
		}
		seen[b.ID] = true
		bets = append(bets, b)
	}
	return bets, errors.Join(errs...)
}

// EncodeBankroll formats the initial bankroll, e.g. "100" or "150.5".
func EncodeBankroll(v decimal.Decimal) string { return v.String() }

// DecodeBankroll parses a bankroll written by EncodeBankroll. Blank text is 0.
func DecodeBankroll(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bankroll %q: %v", ErrCorruptData, s, err)
	}
	return v, nil
}
