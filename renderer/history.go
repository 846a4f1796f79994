package renderer

import (
	"fmt"

	"github.com/etnz/bankroll"
)

type betView struct {
	ID     string
	Date   string
	Odds   string
	Stake  bankroll.Money
	Result bankroll.Result
	Profit bankroll.Money
}

func newBetViews(bets []bankroll.Bet, currency string) []betView {
	views := make([]betView, 0, len(bets))
	for _, b := range bets {
		views = append(views, betView{
			ID:     b.ID,
			Date:   b.Date.String(),
			Odds:   b.Odds.StringFixed(2),
			Stake:  bankroll.M(b.Stake, currency),
			Result: b.Result,
			Profit: bankroll.M(b.Profit(), currency),
		})
	}
	return views
}

// History renders the bets as a markdown table, in the given order.
func History(bets []bankroll.Bet, currency string) string {
	return renderTemplate("history", "history.md", nil, newBetViews(bets, currency))
}

// Bet renders a bet on a single line.
func Bet(b bankroll.Bet, currency string) string {
	return fmt.Sprintf("%s: %s at %s, %s %s (%s)",
		b.Date, bankroll.M(b.Stake, currency), b.Odds.StringFixed(2), b.Result, bankroll.M(b.Profit(), currency).SignedString(), b.ID)
}
