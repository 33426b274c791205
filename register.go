package barista

import (
	"fmt"
	"sync"
)

// Store is the persistence handle the Register operates on. The three tables
// are loaded as snapshots and written back whole, never patched in place.
type Store interface {
	// LoadRecipes returns a snapshot of the recipe catalog. Errors wrap
	// ErrCatalogUnavailable when the backing table is missing or malformed.
	LoadRecipes() (Catalog, error)
	// LoadInventory returns a snapshot of the inventory table. Errors wrap
	// ErrInventoryUnavailable when the backing table is missing or malformed.
	LoadInventory() (Inventory, error)
	// SaveInventory overwrites the persisted inventory with the given
	// snapshot, last writer wins. The replacement is atomic: a reader never
	// observes a partially written table.
	SaveInventory(Inventory) error
	// LoadLedger returns the full sales ledger. A store that has recorded no
	// sale yet returns an empty ledger, not an error.
	LoadLedger() (*Ledger, error)
	// AppendSale appends exactly one row to the persisted ledger.
	AppendSale(Sale) error
}

// SaleResult is the outcome of a committed sale.
type SaleResult struct {
	Drink     string
	Quantity  int
	Revenue   Money
	Cost      Money
	Profit    Money
	Inventory Inventory // inventory snapshot after the debit
}

// Register processes sales against a Store and answers reporting queries.
// It is the entire surface the presentation layer is allowed to use.
//
// The read-modify-write sequence of ProcessSale runs under a mutex so that
// concurrent callers serialize instead of clobbering each other's inventory
// snapshot.
type Register struct {
	mu    sync.Mutex
	store Store
	today func() Date
}

// NewRegister creates a Register over the given store.
func NewRegister(store Store) *Register {
	return &Register{store: store, today: Today}
}

// Recipes returns a snapshot of the drink catalog.
func (r *Register) Recipes() (Catalog, error) {
	return r.store.LoadRecipes()
}

// Inventory returns a snapshot of the current stock levels.
func (r *Register) Inventory() (Inventory, error) {
	return r.store.LoadInventory()
}

// ProcessSale validates and commits the sale of quantity units of a drink.
//
// The whole inventory is checked before any debit: if a single ingredient
// would go below zero the sale fails with *InsufficientStockError and
// neither the inventory nor the ledger is touched. On success the debited
// inventory snapshot is persisted, one row is appended to the ledger, and
// the financials are returned with profit = revenue - cost exactly.
func (r *Register) ProcessSale(drink string, quantity int) (*SaleResult, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("cannot sell %d units: %w", quantity, ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.store.LoadRecipes()
	if err != nil {
		return nil, err
	}
	inventory, err := r.store.LoadInventory()
	if err != nil {
		return nil, err
	}

	recipe, ok := catalog[drink]
	if !ok {
		return nil, fmt.Errorf("no recipe for %q: %w", drink, ErrUnknownDrink)
	}

	qty := Q(quantity)

	// Check every tracked ingredient first. An ingredient the recipe does
	// not use has requirement zero and always passes; an ingredient the
	// recipe uses but the inventory does not track is not checked at all,
	// the recipe column simply has no stock to debit.
	for _, ingredient := range inventory.Ingredients() {
		required := recipe.UsageOf(ingredient).Mul(qty)
		if available := inventory[ingredient].Stock; required.GreaterThan(available) {
			return nil, &InsufficientStockError{
				Ingredient: ingredient,
				Required:   required,
				Available:  available,
			}
		}
	}

	// All checks passed, debit the snapshot and accumulate the cost.
	updated := inventory.Clone()
	var cost Money
	for _, ingredient := range updated.Ingredients() {
		required := recipe.UsageOf(ingredient).Mul(qty)
		if required.IsZero() {
			continue
		}
		item := updated[ingredient]
		item.Stock = item.Stock.Sub(required)
		updated[ingredient] = item
		cost = cost.Add(item.CostPerUnit.Mul(required))
	}

	revenue := recipe.Price.Mul(qty).Round()
	cost = cost.Round()
	profit := revenue.Sub(cost)

	sale := Sale{
		Date:     r.today(),
		Drink:    drink,
		Quantity: quantity,
		Revenue:  revenue,
		Cost:     cost,
		Profit:   profit,
	}

	if err := r.store.SaveInventory(updated); err != nil {
		return nil, err
	}
	if err := r.store.AppendSale(sale); err != nil {
		return nil, err
	}

	return &SaleResult{
		Drink:     drink,
		Quantity:  quantity,
		Revenue:   revenue,
		Cost:      cost,
		Profit:    profit,
		Inventory: updated,
	}, nil
}

// Restock adds the given amount to an ingredient's stock and persists the
// inventory. The amount must be positive.
func (r *Register) Restock(ingredient string, amount Quantity) (Inventory, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("cannot restock %s by %s: %w", ingredient, amount, ErrInvalidQuantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inventory, err := r.store.LoadInventory()
	if err != nil {
		return nil, err
	}
	item, ok := inventory[ingredient]
	if !ok {
		return nil, fmt.Errorf("cannot restock %q: %w", ingredient, ErrUnknownIngredient)
	}
	updated := inventory.Clone()
	item.Stock = item.Stock.Add(amount)
	updated[ingredient] = item

	if err := r.store.SaveInventory(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DailySummary reports today's totals and per-drink counts, or nil when no
// sale was recorded today.
func (r *Register) DailySummary() (*DailySummary, error) {
	ledger, err := r.store.LoadLedger()
	if err != nil {
		return nil, err
	}
	return ledger.DailySummary(r.today()), nil
}

// SalesSummary reports the totals and per-drink breakdown for the given
// date, or nil when that date has no sales.
func (r *Register) SalesSummary(on Date) (*SalesSummary, error) {
	ledger, err := r.store.LoadLedger()
	if err != nil {
		return nil, err
	}
	return ledger.SalesSummary(on), nil
}
