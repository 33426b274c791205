package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "show current inventory levels" }
func (*stockCmd) Usage() string {
	return `till stock

  Shows the stock level and cost per unit of every tracked ingredient.
`
}

func (*stockCmd) SetFlags(*flag.FlagSet) {}

func (*stockCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inventory, err := newRegister().Inventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockMarkdown(inventory))
	return subcommands.ExitSuccess
}
