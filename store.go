package barista

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"maps"
	"os"
	"path/filepath"
)

// File names of the three tables inside a store directory.
const (
	RecipesFilename   = "recipes.csv"
	InventoryFilename = "inventory.csv"
	SalesLogFilename  = "sales_log.csv"
)

// DirStore persists the three tables as CSV files in a single directory.
//
// Inventory saves go through a temporary file renamed over the table, so a
// crash mid-write never leaves a truncated table behind. The ledger file is
// append-only: one committed sale is one appended row.
type DirStore struct {
	dir string
}

// NewDirStore returns a store over the given data directory.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the data directory the store operates on.
func (s *DirStore) Dir() string { return s.dir }

// LoadRecipes implements Store.
func (s *DirStore) LoadRecipes() (Catalog, error) {
	path := filepath.Join(s.dir, RecipesFilename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %v", ErrCatalogUnavailable, path, err)
	}
	defer f.Close()

	catalog, err := DecodeRecipes(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCatalogUnavailable, path, err)
	}
	return catalog, nil
}

// LoadInventory implements Store.
func (s *DirStore) LoadInventory() (Inventory, error) {
	path := filepath.Join(s.dir, InventoryFilename)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %v", ErrInventoryUnavailable, path, err)
	}
	defer f.Close()

	inventory, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInventoryUnavailable, path, err)
	}
	return inventory, nil
}

// SaveInventory implements Store. The snapshot is written to a temporary
// file in the same directory and renamed over the table, so concurrent
// readers see either the old table or the new one, never a partial write.
func (s *DirStore) SaveInventory(inventory Inventory) error {
	path := filepath.Join(s.dir, InventoryFilename)
	tmp, err := os.CreateTemp(s.dir, InventoryFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create temporary file in %q: %w", s.dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeInventory(tmp, inventory); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", path, err)
	}
	log.Printf("replace-inventory-file name=%q items=%d", path, len(inventory))
	return nil
}

// LoadLedger implements Store. A missing ledger file reads as an empty
// ledger: the file is only created by the first committed sale.
func (s *DirStore) LoadLedger() (*Ledger, error) {
	path := filepath.Join(s.dir, SalesLogFilename)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger %q: %w", path, err)
	}
	return ledger, nil
}

// AppendSale implements Store. The header row is written when the file is
// first created; afterwards every sale is exactly one appended row and
// prior rows are never rewritten.
func (s *DirStore) AppendSale(sale Sale) error {
	path := filepath.Join(s.dir, SalesLogFilename)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("persist error: cannot open ledger %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("persist error: cannot stat ledger %q: %w", path, err)
	}
	if info.Size() == 0 {
		empty := NewLedger()
		if err := EncodeLedger(f, empty); err != nil {
			return err
		}
		log.Printf("create-ledger-file name=%q", path)
	}
	return EncodeSale(f, sale)
}

// Init writes the catalog and inventory tables into the store directory,
// creating it if needed. It refuses to overwrite existing tables.
func (s *DirStore) Init(catalog Catalog, inventory Inventory) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("persist error: cannot create directory %q: %w", s.dir, err)
	}
	for _, filename := range []string{RecipesFilename, InventoryFilename} {
		if _, err := os.Stat(filepath.Join(s.dir, filename)); err == nil {
			return fmt.Errorf("persist error: %q already exists in %q", filename, s.dir)
		}
	}

	recipesPath := filepath.Join(s.dir, RecipesFilename)
	f, err := os.Create(recipesPath)
	if err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", recipesPath, err)
	}
	defer f.Close()
	if err := EncodeRecipes(f, catalog); err != nil {
		return err
	}
	log.Printf("create-recipes-file name=%q drinks=%d", recipesPath, len(catalog))

	return s.SaveInventory(inventory)
}

var _ Store = (*DirStore)(nil)

// MemStore is an in-memory Store for tests and ephemeral use. It applies
// the same snapshot semantics as DirStore: loads return copies, saves
// replace the whole table.
type MemStore struct {
	Catalog   Catalog
	Stock     Inventory
	Log       *Ledger
	saveCount int
}

// NewMemStore creates a MemStore over the given catalog and inventory.
func NewMemStore(catalog Catalog, inventory Inventory) *MemStore {
	return &MemStore{Catalog: catalog, Stock: inventory, Log: NewLedger()}
}

// LoadRecipes implements Store.
func (s *MemStore) LoadRecipes() (Catalog, error) {
	if s.Catalog == nil {
		return nil, fmt.Errorf("%w: no catalog", ErrCatalogUnavailable)
	}
	return maps.Clone(s.Catalog), nil
}

// LoadInventory implements Store.
func (s *MemStore) LoadInventory() (Inventory, error) {
	if s.Stock == nil {
		return nil, fmt.Errorf("%w: no inventory", ErrInventoryUnavailable)
	}
	return s.Stock.Clone(), nil
}

// SaveInventory implements Store.
func (s *MemStore) SaveInventory(inventory Inventory) error {
	s.Stock = inventory.Clone()
	s.saveCount++
	return nil
}

// SaveCount returns how many times the inventory was persisted.
func (s *MemStore) SaveCount() int { return s.saveCount }

// LoadLedger implements Store.
func (s *MemStore) LoadLedger() (*Ledger, error) {
	dup := NewLedger()
	dup.sales = append(dup.sales, s.Log.sales...)
	return dup, nil
}

// AppendSale implements Store.
func (s *MemStore) AppendSale(sale Sale) error {
	s.Log.Append(sale)
	return nil
}

var _ Store = (*MemStore)(nil)
