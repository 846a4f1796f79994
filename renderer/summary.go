package renderer

import "github.com/etnz/bankroll"

// summaryView is the summary with every amount in the display currency.
type summaryView struct {
	Bets, Wins, Losses, Voids int

	InitialBankroll bankroll.Money
	CurrentBankroll bankroll.Money
	TotalStake      bankroll.Money
	TotalProfit     bankroll.Money
	ROI             bankroll.Percent
}

func newSummaryView(s bankroll.Summary, currency string) summaryView {
	return summaryView{
		Bets:            s.Bets,
		Wins:            s.Wins,
		Losses:          s.Losses,
		Voids:           s.Voids,
		InitialBankroll: bankroll.M(s.InitialBankroll, currency),
		CurrentBankroll: bankroll.M(s.CurrentBankroll, currency),
		TotalStake:      bankroll.M(s.TotalStake, currency),
		TotalProfit:     bankroll.M(s.TotalProfit, currency),
		ROI:             s.ROI,
	}
}

// Summary renders the summary as a markdown table.
func Summary(s bankroll.Summary, currency string) string {
	return renderTemplate("summary", "summary.md", nil, newSummaryView(s, currency))
}

// Report renders the summary followed by the history of the ledger.
func Report(l bankroll.Ledger, currency string) string {
	data := struct {
		Summary summaryView
		History []betView
	}{
		Summary: newSummaryView(l.Summary(), currency),
		History: newBetViews(l.Bets(), currency),
	}
	partials := map[string]string{
		"summary": "summary.md",
		"history": "history.md",
	}
	return renderTemplate("report", "report.md", partials, data)
}
