package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

// summaryCmd displays the statistics of the ledger.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the ledger statistics" }
func (*summaryCmd) Usage() string {
	return `bets summary

  Displays the total stake, profit, ROI and current bankroll.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	printMarkdown(renderer.Summary(a.store.Ledger().Summary(), a.currency))
	return subcommands.ExitSuccess
}
