package barista

import (
	"maps"
	"slices"
)

// Item is the inventory entry for one ingredient.
type Item struct {
	Ingredient  string
	Stock       Quantity // invariant: never negative
	CostPerUnit Money
}

// Inventory is the mutable mapping from ingredient name to its inventory item.
// A sale mutates a private copy and the whole table is persisted at once, so
// readers never observe a half-applied debit.
type Inventory map[string]Item

// Ingredients returns the ingredient names in alphabetical order.
func (inv Inventory) Ingredients() []string {
	return slices.Sorted(maps.Keys(inv))
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	return maps.Clone(inv)
}
