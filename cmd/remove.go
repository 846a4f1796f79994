package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove bets by id" }
func (*removeCmd) Usage() string {
	return `bets remove <id>...

  Removes the bets with the given ids. Unknown ids are reported and ignored.
`
}

func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (*removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one bet id is required.")
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	for _, id := range f.Args() {
		b, ok := a.store.Ledger().Bet(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: no bet with id %q\n", id)
			continue
		}
		a.store.Remove(ctx, id)
		fmt.Fprintf(stdout, "Removed %s\n", renderer.Bet(b, a.currency))
	}
	return subcommands.ExitSuccess
}
