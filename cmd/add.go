package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	form bankroll.Form
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new bet at the head of the ledger" }
func (*addCmd) Usage() string {
	return `bets add [-d <date>] [-o <odds>] [-s <stake>] [-r win|loss|void]

  Records a new bet. Odds and stake accept a decimal comma or a decimal point.
  Odds must be greater than 1 and the stake greater than 0.

Usage Examples:
# A winning bet of 10 at 2.00 today.
$ bets add

# A lost bet of 20 at 1,50.
$ bets add -d 2024-05-01 -o 1,50 -s 20 -r loss

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.form = bankroll.NewForm()
	f.StringVar(&c.form.Date, "d", c.form.Date, "Date of the bet (YYYY-MM-DD).")
	f.StringVar(&c.form.Odds, "o", c.form.Odds, "Decimal odds of the bet.")
	f.StringVar(&c.form.Stake, "s", c.form.Stake, "Amount staked.")
	f.StringVar(&c.form.Result, "r", c.form.Result, "Result of the bet: win, loss or void.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	b, err := c.form.Bet(bankroll.NewID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	l, err := a.store.Append(ctx, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding bet: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added %s\n", renderer.Bet(b, a.currency))
	printMarkdown(renderer.Summary(l.Summary(), a.currency))
	return subcommands.ExitSuccess
}
