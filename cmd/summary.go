package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/barista"
	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date    string
	drink   string
	outFile string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the sales summary for a date" }
func (*summaryCmd) Usage() string {
	return `till summary [-d <date>] [-drink <drink>] [-o <file.csv|file.xlsx>]

  Displays the totals and per-drink breakdown of the sales recorded on a
  date (today by default). With -o the breakdown is also exported to a CSV
  or XLSX file, chosen by the file extension.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", barista.Today().String(), "Date to summarize")
	f.StringVar(&c.drink, "drink", "", "Restrict the breakdown to a single drink")
	f.StringVar(&c.outFile, "o", "", "Export the breakdown to this file (.csv or .xlsx)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := barista.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	summary, err := newRegister().SalesSummary(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if summary != nil && c.drink != "" {
		summary.Breakdown = summary.ByDrink(c.drink)
	}

	printMarkdown(renderer.SummaryMarkdown(summary))

	if c.outFile == "" {
		return subcommands.ExitSuccess
	}
	if summary == nil {
		fmt.Fprintln(os.Stderr, "Nothing to export.")
		return subcommands.ExitSuccess
	}
	if err := export(summary.Table(), c.outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Exported to %q.\n", c.outFile)
	return subcommands.ExitSuccess
}

// export serializes the table into the file, picking the format from the
// extension.
func export(t barista.Table, path string) error {
	var data []byte
	var err error
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		data, err = barista.ExportCSV(t)
	case ".xlsx":
		data, err = barista.ExportXLSX(t)
	default:
		return fmt.Errorf("unsupported export format %q, want .csv or .xlsx", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
