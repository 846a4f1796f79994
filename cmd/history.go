package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/date"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	from   string
	to     string
	result string
	head   int
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the bets, most recent first" }
func (*historyCmd) Usage() string {
	return `bets history [-from <date>] [-to <date>] [-r win|loss|void] [-head <n>] [-tail <n>]

  Lists the bets of the ledger with their profit, with options for filtering
  and limiting the output.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Only show bets on or after this date.")
	f.StringVar(&c.to, "to", "", "Only show bets on or before this date.")
	f.StringVar(&c.result, "r", "", "Only show bets with this result.")
	f.IntVar(&c.head, "head", 0, "Show only the first N bets.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N bets.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	var (
		rng date.Range
		err error
	)
	if c.from != "" {
		if rng.From, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if rng.To, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	var result bankroll.Result
	if c.result != "" {
		if result, err = bankroll.ParseResult(c.result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	bets := filterBets(a.store.Ledger().Bets(), rng, result, c.head, c.tail)
	printMarkdown(renderer.History(bets, a.currency))
	return subcommands.ExitSuccess
}

// filterBets keeps the bets within rng and with the given result (any when
// empty), then limits them to the first head or last tail ones.
func filterBets(bets []bankroll.Bet, rng date.Range, result bankroll.Result, head, tail int) []bankroll.Bet {
	var kept []bankroll.Bet
	for _, b := range bets {
		if !rng.Contains(b.Date) {
			continue
		}
		if result != "" && b.Result != result {
			continue
		}
		kept = append(kept, b)
	}
	if head > 0 && head < len(kept) {
		kept = kept[:head]
	}
	if tail > 0 && tail < len(kept) {
		kept = kept[len(kept)-tail:]
	}
	return kept
}
