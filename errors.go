package barista

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the core. They are always wrapped with context,
// callers should test them with errors.Is.
var (
	// ErrCatalogUnavailable reports that the recipe table is missing or malformed.
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")
	// ErrInventoryUnavailable reports that the inventory table is missing or malformed.
	ErrInventoryUnavailable = errors.New("inventory unavailable")
	// ErrUnknownDrink reports a sale request for a drink absent from the catalog.
	ErrUnknownDrink = errors.New("unknown drink")
	// ErrInvalidQuantity reports a sale request with a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrUnknownIngredient reports a restock request for an ingredient the
	// inventory does not track.
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

// InsufficientStockError reports that a sale would drive an ingredient's
// stock below zero. The sale is rejected in full: no ingredient is debited
// and no ledger row is written.
type InsufficientStockError struct {
	Ingredient string
	Required   Quantity
	Available  Quantity
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s in stock: need %s, have %s", e.Ingredient, e.Required, e.Available)
}
