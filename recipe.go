package barista

import (
	"maps"
	"slices"
)

// Recipe describes one drink on the menu: its selling price and how much of
// each tracked ingredient one unit consumes.
type Recipe struct {
	Drink string
	Price Money
	Usage map[string]Quantity // per-unit ingredient consumption, by ingredient name
}

// UsageOf returns the per-unit consumption of the given ingredient.
// An ingredient the recipe does not reference has usage zero.
func (r Recipe) UsageOf(ingredient string) Quantity {
	return r.Usage[ingredient]
}

// Catalog is the read-only mapping from drink name to its recipe.
// It is a snapshot: mutating it has no effect on the persisted table.
type Catalog map[string]Recipe

// Drinks returns the drink names in alphabetical order.
func (c Catalog) Drinks() []string {
	return slices.Sorted(maps.Keys(c))
}
