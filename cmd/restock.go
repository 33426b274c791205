package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista"
	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

// restockCmd holds the flags for the 'restock' subcommand.
type restockCmd struct {
	ingredient string
	amount     float64
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add stock for an ingredient" }
func (*restockCmd) Usage() string {
	return `till restock -i <ingredient> -q <amount>

  Adds the given amount to an ingredient's stock and persists the
  inventory table.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ingredient, "i", "", "Ingredient to restock")
	f.Float64Var(&c.amount, "q", 0, "Amount to add, in the ingredient's unit")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ingredient == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <ingredient> is required")
		return subcommands.ExitUsageError
	}

	inventory, err := newRegister().Restock(c.ingredient, barista.Q(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockMarkdown(inventory))
	return subcommands.ExitSuccess
}
