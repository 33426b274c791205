// Package cmd implements the subcommands of the till command-line tool.
// Commands only ever talk to the core through the Register surface.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/barista"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands registered by the till binary.
var Commands = []subcommands.Command{
	&initCmd{},
	&menuCmd{},
	&sellCmd{},
	&stockCmd{},
	&restockCmd{},
	&dailyCmd{},
	&summaryCmd{},
}

var dataDir = flag.String("data", "data", "Path to the directory holding the CSV tables")

// newRegister opens a Register over the configured data directory.
func newRegister() *barista.Register {
	return barista.NewRegister(barista.NewDirStore(*dataDir))
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be set up (e.g. a dumb terminal).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
