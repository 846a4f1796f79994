package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/etnz/bankroll"
	"github.com/google/subcommands"
)

type bankrollCmd struct{}

func (*bankrollCmd) Name() string     { return "bankroll" }
func (*bankrollCmd) Synopsis() string { return "show or set the initial bankroll" }
func (*bankrollCmd) Usage() string {
	return `bets bankroll [<amount>]

  Without argument, prints the initial bankroll. With an amount, replaces it.
  An amount that cannot be read sets the bankroll to 0.
`
}

func (*bankrollCmd) SetFlags(*flag.FlagSet) {}

func (*bankrollCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one amount is expected.")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if f.NArg() == 1 {
		v := math.NaN()
		if d, ok := bankroll.ParseAmount(f.Arg(0)); ok {
			v = d.InexactFloat64()
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %q is not a number, the bankroll is set to 0\n", f.Arg(0))
		}
		a.store.SetInitialBankroll(ctx, v)
	}
	fmt.Fprintf(stdout, "Initial bankroll: %s\n", bankroll.M(a.store.Ledger().InitialBankroll(), a.currency))
	return subcommands.ExitSuccess
}
