// Package renderer turns the core report structs into markdown for the
// terminal. It never reaches into the persisted tables: everything it
// renders comes from the Register surface.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/etnz/barista"
	md "github.com/nao1215/markdown"
)

// ReceiptMarkdown renders the outcome of a committed sale.
func ReceiptMarkdown(r *barista.SaleResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sold %d × %s", r.Quantity, r.Drink))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{md.Bold("Revenue"), r.Revenue.String()},
			{"Cost", r.Cost.String()},
			{"Profit", r.Profit.String()},
		},
	})

	doc.H2("Remaining Stock")
	doc.Table(stockTable(r.Inventory))

	return doc.String()
}

// DailyMarkdown renders today's summary. A nil summary renders as a note
// that no sale was recorded.
func DailyMarkdown(s *barista.DailySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s == nil {
		doc.PlainText("No sales recorded today.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Daily Summary for %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Drink", "Sold"},
		Rows:      s.Table().Rows,
	})

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Revenue"), md.Bold(s.Revenue.String())},
		Rows: [][]string{
			{"Total Cost", s.Cost.String()},
			{"Total Profit", s.Profit.String()},
		},
	})

	return doc.String()
}

// SummaryMarkdown renders a historical summary with its per-drink
// breakdown. A nil summary renders as a note that the day had no sales.
func SummaryMarkdown(s *barista.SalesSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if s == nil {
		doc.PlainText("No sales recorded for that date.")
		return doc.String()
	}

	doc.H1(fmt.Sprintf("Sales Summary for %s", s.Date))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Revenue"), md.Bold(s.Revenue.String())},
		Rows: [][]string{
			{"Cost", s.Cost.String()},
			{"Profit", s.Profit.String()},
		},
	})

	doc.H2("Breakdown by Drink")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Drink", "Quantity", "Revenue", "Cost", "Profit"},
	}
	for _, g := range s.Breakdown {
		table.Rows = append(table.Rows, []string{
			g.Drink,
			strconv.Itoa(g.Quantity),
			g.Revenue.String(),
			g.Cost.String(),
			g.Profit.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// MenuMarkdown renders the recipe catalog.
func MenuMarkdown(catalog barista.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Menu")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Drink", "Price", "Ingredients"},
	}
	for _, drink := range catalog.Drinks() {
		recipe := catalog[drink]
		table.Rows = append(table.Rows, []string{
			drink,
			recipe.Price.String(),
			usageText(recipe),
		})
	}
	doc.Table(table)

	return doc.String()
}

// StockMarkdown renders the current inventory levels.
func StockMarkdown(inventory barista.Inventory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	doc.Table(stockTable(inventory))

	return doc.String()
}

func stockTable(inventory barista.Inventory) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ingredient", "Stock", "Cost / Unit"},
	}
	for _, name := range inventory.Ingredients() {
		item := inventory[name]
		table.Rows = append(table.Rows, []string{
			name,
			item.Stock.String(),
			item.CostPerUnit.String(),
		})
	}
	return table
}

func usageText(recipe barista.Recipe) string {
	var b bytes.Buffer
	first := true
	for _, name := range sortedUsage(recipe) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s × %s", recipe.Usage[name], name)
	}
	if first {
		return "(none)"
	}
	return b.String()
}

func sortedUsage(recipe barista.Recipe) []string {
	names := make([]string, 0, len(recipe.Usage))
	for name := range recipe.Usage {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
