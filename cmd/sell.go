package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	drink    string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a drink" }
func (*sellCmd) Usage() string {
	return `till sell -d <drink> [-q <quantity>]

  Validates the sale against current stock, debits the inventory, appends
  one row to the sales ledger, and prints the receipt. A sale that would
  drive any ingredient below zero is rejected whole.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.drink, "d", "", "Drink to sell, as named on the menu")
	f.IntVar(&c.quantity, "q", 1, "Number of units sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.drink == "" {
		fmt.Fprintln(os.Stderr, "Error: -d <drink> is required")
		return subcommands.ExitUsageError
	}

	result, err := newRegister().ProcessSale(c.drink, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReceiptMarkdown(result))
	return subcommands.ExitSuccess
}
