package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista/renderer"
	"github.com/google/subcommands"
)

type dailyCmd struct{}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display today's sales summary" }
func (*dailyCmd) Usage() string {
	return `till daily

  Displays today's totals and the number of units sold per drink.
  For past dates use 'till summary -d <date>'.
`
}

func (*dailyCmd) SetFlags(*flag.FlagSet) {}

func (*dailyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	summary, err := newRegister().DailySummary()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DailyMarkdown(summary))
	return subcommands.ExitSuccess
}
