package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

// Export formats.
const (
	formatMarkdown = "md"
	formatHTML     = "html"
	formatCSV      = "csv"
	formatJSON     = "json"
)

var exportFormats = []string{formatMarkdown, formatHTML, formatCSV, formatJSON}

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as markdown, html, csv or json" }
func (*exportCmd) Usage() string {
	return `bets export [-f md|html|csv|json] [-o <file>]

  Writes the ledger to stdout or to a file. The markdown and html formats
  contain the summary and the history, csv and json only the bets. The json
  format is the persisted bets_v1 array and can be read back by 'bets import -p $'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "f", formatMarkdown, "Output format: md, html, csv or json.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	var w io.Writer = stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := export(w, c.format, a.store.Ledger(), a.currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// export writes the ledger to w in the given format.
func export(w io.Writer, format string, l bankroll.Ledger, currency string) error {
	switch format {
	case formatMarkdown:
		_, err := io.WriteString(w, renderer.Report(l, currency))
		return err
	case formatHTML:
		page, err := renderer.HTML("Bankroll", renderer.Report(l, currency))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, page)
		return err
	case formatCSV:
		return renderer.CSV(w, l.Bets())
	case formatJSON:
		return bankroll.EncodeBets(w, l.Bets())
	default:
		return fmt.Errorf("unknown format %q, want one of %q", format, exportFormats)
	}
}
