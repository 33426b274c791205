package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "list the drinks on the menu" }
func (*menuCmd) Usage() string {
	return `till menu

  Lists every drink in the recipe catalog with its price and the
  ingredients one unit consumes.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := newRegister().Recipes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MenuMarkdown(catalog))
	return subcommands.ExitSuccess
}
