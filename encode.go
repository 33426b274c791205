package barista

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// This file contains code to persist the three tables as CSV, in a way that
// is human-readable and spreadsheet-friendly. The format is deliberately
// plain: one header row, then one record per row.
//
// The overall strategy is symmetric to the ledger persistence:
//   Decode: read the header, resolve the required columns by name, then
//           parse every row into its record, failing on the first malformed
//           cell with its position.
//   Encode: write the header, then one row per record in a deterministic
//           (alphabetical) order so that two saves of the same snapshot are
//           byte identical.

// Recipe table columns. Every other header column is an ingredient.
const (
	colDrink = "Drink"
	colPrice = "Price"
)

// Inventory table columns.
const (
	colIngredient  = "Ingredient"
	colStock       = "Stock"
	colCostPerUnit = "CostPerUnit"
)

// Ledger table columns.
const (
	colDate     = "Date"
	colQuantity = "Quantity"
	colRevenue  = "Revenue"
	colCost     = "Cost"
	colProfit   = "Profit"
)

// columnIndex resolves required column names in a header row.
// It returns the index of each name, or an error naming the first missing column.
func columnIndex(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

// DecodeRecipes reads the recipe catalog from a CSV stream.
//
// The header must contain the Drink and Price columns; every remaining
// column names an ingredient and gives its per-unit usage. An empty cell
// reads as usage zero.
func DecodeRecipes(r io.Reader) (Catalog, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("format error: empty table")
	}
	header := rows[0]
	index, err := columnIndex(header, colDrink, colPrice)
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}

	catalog := make(Catalog, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		drink := row[index[colDrink]]
		if drink == "" {
			return nil, fmt.Errorf("format error on line %d: empty drink name", line)
		}
		if _, exists := catalog[drink]; exists {
			return nil, fmt.Errorf("format error on line %d: drink %q is already defined", line, drink)
		}
		price, err := ParseMoney(row[index[colPrice]])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid price %q: %w", line, row[index[colPrice]], err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("format error on line %d: negative price %q", line, row[index[colPrice]])
		}

		usage := make(map[string]Quantity)
		for col, name := range header {
			if name == colDrink || name == colPrice {
				continue
			}
			cell := row[col]
			if cell == "" {
				continue // missing ingredient cell means usage zero
			}
			q, err := ParseQuantity(cell)
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: invalid %s usage %q: %w", line, name, cell, err)
			}
			if q.IsNegative() {
				return nil, fmt.Errorf("format error on line %d: negative %s usage %q", line, name, cell)
			}
			if !q.IsZero() {
				usage[name] = q
			}
		}
		catalog[drink] = Recipe{Drink: drink, Price: price, Usage: usage}
	}
	return catalog, nil
}

// EncodeRecipes writes the catalog as CSV. Ingredient columns are the union
// of all recipes' ingredients, in alphabetical order; drinks are rows in
// alphabetical order.
func EncodeRecipes(w io.Writer, catalog Catalog) error {
	ingredients := make(map[string]struct{})
	for _, recipe := range catalog {
		for name := range recipe.Usage {
			ingredients[name] = struct{}{}
		}
	}
	columns := make([]string, 0, len(ingredients))
	for name := range ingredients {
		columns = append(columns, name)
	}
	slices.Sort(columns)

	cw := csv.NewWriter(w)
	header := append([]string{colDrink, colPrice}, columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	for _, drink := range catalog.Drinks() {
		recipe := catalog[drink]
		row := []string{drink, recipe.Price.Text()}
		for _, name := range columns {
			if q, ok := recipe.Usage[name]; ok {
				row = append(row, q.String())
			} else {
				row = append(row, "0")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("persist error: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeInventory reads the inventory table from a CSV stream.
func DecodeInventory(r io.Reader) (Inventory, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("format error: empty table")
	}
	index, err := columnIndex(rows[0], colIngredient, colStock, colCostPerUnit)
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}

	inventory := make(Inventory, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		name := row[index[colIngredient]]
		if name == "" {
			return nil, fmt.Errorf("format error on line %d: empty ingredient name", line)
		}
		if _, exists := inventory[name]; exists {
			return nil, fmt.Errorf("format error on line %d: ingredient %q is already defined", line, name)
		}
		stock, err := ParseQuantity(row[index[colStock]])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid stock %q: %w", line, row[index[colStock]], err)
		}
		if stock.IsNegative() {
			return nil, fmt.Errorf("format error on line %d: negative stock %q", line, row[index[colStock]])
		}
		cost, err := ParseMoney(row[index[colCostPerUnit]])
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: invalid cost %q: %w", line, row[index[colCostPerUnit]], err)
		}
		if cost.IsNegative() {
			return nil, fmt.Errorf("format error on line %d: negative cost %q", line, row[index[colCostPerUnit]])
		}
		inventory[name] = Item{Ingredient: name, Stock: stock, CostPerUnit: cost}
	}
	return inventory, nil
}

// EncodeInventory writes the inventory as CSV, one ingredient per row in
// alphabetical order.
func EncodeInventory(w io.Writer, inventory Inventory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colIngredient, colStock, colCostPerUnit}); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	for _, name := range inventory.Ingredients() {
		item := inventory[name]
		if err := cw.Write([]string{name, item.Stock.String(), item.CostPerUnit.Text()}); err != nil {
			return fmt.Errorf("persist error: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// salesHeader is the ledger table header, in column order.
var salesHeader = []string{colDate, colDrink, colQuantity, colRevenue, colCost, colProfit}

// DecodeLedger reads the sales ledger from a CSV stream and returns it
// sorted chronologically.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	ledger := NewLedger()
	if len(rows) == 0 {
		return ledger, nil // a ledger that has seen no sale yet
	}
	index, err := columnIndex(rows[0], salesHeader...)
	if err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}

	for i, row := range rows[1:] {
		line := i + 2
		sale, err := decodeSaleRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		ledger.sales = append(ledger.sales, sale)
	}
	ledger.stableSort()
	return ledger, nil
}

func decodeSaleRow(row []string, index map[string]int) (Sale, error) {
	on, err := ParseDate(row[index[colDate]])
	if err != nil {
		return Sale{}, err
	}
	quantity, err := strconv.Atoi(row[index[colQuantity]])
	if err != nil {
		return Sale{}, fmt.Errorf("invalid quantity %q: %w", row[index[colQuantity]], err)
	}
	revenue, err := ParseMoney(row[index[colRevenue]])
	if err != nil {
		return Sale{}, fmt.Errorf("invalid revenue %q: %w", row[index[colRevenue]], err)
	}
	cost, err := ParseMoney(row[index[colCost]])
	if err != nil {
		return Sale{}, fmt.Errorf("invalid cost %q: %w", row[index[colCost]], err)
	}
	profit, err := ParseMoney(row[index[colProfit]])
	if err != nil {
		return Sale{}, fmt.Errorf("invalid profit %q: %w", row[index[colProfit]], err)
	}
	return Sale{
		Date:     on,
		Drink:    row[index[colDrink]],
		Quantity: quantity,
		Revenue:  revenue,
		Cost:     cost,
		Profit:   profit,
	}, nil
}

// EncodeSale writes a single ledger row (without header).
func EncodeSale(w io.Writer, s Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(saleRow(s)); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeLedger writes the full ledger, header included, in chronological
// order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return fmt.Errorf("persist error: %w", err)
	}
	for s := range ledger.Sales() {
		if err := cw.Write(saleRow(s)); err != nil {
			return fmt.Errorf("persist error: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func saleRow(s Sale) []string {
	return []string{
		s.Date.String(),
		s.Drink,
		strconv.Itoa(s.Quantity),
		s.Revenue.Text(),
		s.Cost.Text(),
		s.Profit.Text(),
	}
}
