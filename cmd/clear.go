package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every bet of the ledger" }
func (*clearCmd) Usage() string {
	return `bets clear [-y]

  Deletes all bets after confirmation. The initial bankroll is kept.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	n := a.store.Ledger().Len()
	if n == 0 {
		fmt.Fprintln(os.Stderr, "No bets to clear.")
		return subcommands.ExitSuccess
	}
	if !c.yes && !confirm(stdin, os.Stderr, fmt.Sprintf("Delete all %d bets? [y/N] ", n)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}
	a.store.Clear(ctx)
	fmt.Fprintf(stdout, "Cleared %d bets.\n", n)
	return subcommands.ExitSuccess
}
