package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/barista"
	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a data directory with a sample menu" }
func (*initCmd) Usage() string {
	return `till init

  Creates the data directory with a sample recipe catalog and inventory,
  ready to ring up sales. Refuses to overwrite existing tables.
`
}

func (*initCmd) SetFlags(*flag.FlagSet) {}

func (*initCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := barista.NewDirStore(*dataDir)
	if err := store.Init(sampleCatalog(), sampleInventory()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Initialized data directory %q.\n", store.Dir())
	return subcommands.ExitSuccess
}

func sampleCatalog() barista.Catalog {
	return barista.Catalog{
		"Espresso": {
			Drink: "Espresso",
			Price: barista.M(2.50),
			Usage: map[string]barista.Quantity{"espresso": barista.Q(1)},
		},
		"Latte": {
			Drink: "Latte",
			Price: barista.M(4.00),
			Usage: map[string]barista.Quantity{"espresso": barista.Q(1), "milk": barista.Q(2)},
		},
		"Cappuccino": {
			Drink: "Cappuccino",
			Price: barista.M(3.50),
			Usage: map[string]barista.Quantity{"espresso": barista.Q(1), "milk": barista.Q(1.5)},
		},
		"Mocha": {
			Drink: "Mocha",
			Price: barista.M(4.50),
			Usage: map[string]barista.Quantity{
				"espresso":  barista.Q(1),
				"milk":      barista.Q(1.5),
				"chocolate": barista.Q(1),
			},
		},
	}
}

func sampleInventory() barista.Inventory {
	return barista.Inventory{
		"espresso":  {Ingredient: "espresso", Stock: barista.Q(100), CostPerUnit: barista.M(0.30)},
		"milk":      {Ingredient: "milk", Stock: barista.Q(100), CostPerUnit: barista.M(0.50)},
		"chocolate": {Ingredient: "chocolate", Stock: barista.Q(50), CostPerUnit: barista.M(0.25)},
	}
}
