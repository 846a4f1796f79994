package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/bankroll"
	"github.com/google/subcommands"
)

type importCmd struct {
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import bets from a JSON document" }
func (*importCmd) Usage() string {
	return `bets import [-p <jsonpath>] [<file>]

  Imports the bets found at a JSONPath in a JSON document read from a file or
  from stdin. The default path reads a browser local-storage dump, where the
  bets are kept as a string under "bets_v1". Bets already in the ledger are
  skipped.

Usage Examples:
# A local-storage dump.
$ bets import storage.json

# The output of 'bets export -f json'.
$ bets import -p '$' bets.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "p", bankroll.DefaultImportPath, "JSONPath of the bets in the document.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = stdin
	switch f.NArg() {
	case 0:
	case 1:
		if f.Arg(0) == "-" {
			break
		}
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one file is expected.")
		return subcommands.ExitUsageError
	}

	bets, err := bankroll.ImportJSON(r, c.path)
	if err != nil && len(bets) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: some records were skipped: %v\n", err)
	}

	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	_, added := a.store.Import(ctx, bets)
	fmt.Fprintf(stdout, "Imported %d of %d bets.\n", added, len(bets))
	return subcommands.ExitSuccess
}
