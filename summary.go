package bankroll

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Summary provides an at-a-glance overview of a ledger.
type Summary struct {
	Bets   int
	Wins   int
	Losses int
	Voids  int

	TotalStake      decimal.Decimal
	TotalProfit     decimal.Decimal
	ROI             Percent // TotalProfit / TotalStake, 0 when nothing is staked
	InitialBankroll decimal.Decimal
	CurrentBankroll decimal.Decimal // InitialBankroll + TotalProfit
}

// Summarize computes the summary of bets starting from an initial bankroll.
// It is recomputed from scratch on every call.
func Summarize(bets []Bet, initial decimal.Decimal) Summary {
	s := Summary{
		Bets:            len(bets),
		TotalStake:      decimal.Zero,
		TotalProfit:     decimal.Zero,
		InitialBankroll: initial,
	}
	for _, b := range bets {
		s.TotalStake = s.TotalStake.Add(b.Stake)
		s.TotalProfit = s.TotalProfit.Add(b.Profit())
		switch b.Result {
		case Win:
			s.Wins++
		case Loss:
			s.Losses++
		case Void:
			s.Voids++
		}
	}
	if s.TotalStake.IsPositive() {
		roi := s.TotalProfit.Div(s.TotalStake).Mul(hundred)
		s.ROI = Percent(roi.InexactFloat64())
	}
	s.CurrentBankroll = initial.Add(s.TotalProfit)
	return s
}
