package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/bankroll"
)

var csvHeader = []string{"id", "date", "odds", "stake", "result", "profit"}

// CSV writes the bets with a header row, amounts with two decimals.
func CSV(w io.Writer, bets []bankroll.Bet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range bets {
		record := []string{
			b.ID,
			b.Date.String(),
			b.Odds.StringFixed(2),
			b.Stake.StringFixed(2),
			string(b.Result),
			b.Profit().StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write bet %s: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
