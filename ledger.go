package barista

import (
	"iter"
	"slices"
	"sort"
)

// Sale is one committed row of the sales ledger. It is immutable once
// written: the ledger is append-only and no record is ever rewritten.
type Sale struct {
	Date     Date
	Drink    string
	Quantity int
	Revenue  Money
	Cost     Money
	Profit   Money
}

// Ledger is the append-only record of completed sales, the source of truth
// for all reporting.
//
// In a Ledger sales are always in chronological order.
type Ledger struct {
	sales []Sale
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{sales: make([]Sale, 0)}
}

// Append adds a sale to the ledger, keeping the chronological order.
func (l *Ledger) Append(s Sale) {
	l.sales = append(l.sales, s)
	l.stableSort()
}

// Len returns the number of sales in the ledger.
func (l *Ledger) Len() int { return len(l.sales) }

// Sales iterates over all sales in chronological order.
func (l *Ledger) Sales() iter.Seq[Sale] {
	return slices.Values(l.sales)
}

// stableSort sorts sales by date. Sales on the same day keep their original
// relative order, which preserves the order they were rung up.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.sales, func(i, j int) bool {
		return l.sales[i].Date.Before(l.sales[j].Date)
	})
}

// on iterates over the sales of a single day.
func (l *Ledger) on(day Date) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if s.Date != day {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// DailySummary holds one day's totals and the number of units sold per drink.
type DailySummary struct {
	Date     Date
	PerDrink map[string]int // units sold by drink name
	Revenue  Money
	Cost     Money
	Profit   Money
}

// DailySummary aggregates the sales of the given day.
//
// It returns nil when the ledger has no row for that day: a day without
// sales is reported as absent, not as a zero-value summary.
func (l *Ledger) DailySummary(on Date) *DailySummary {
	sum := &DailySummary{Date: on, PerDrink: make(map[string]int)}
	found := false
	for s := range l.on(on) {
		found = true
		sum.PerDrink[s.Drink] += s.Quantity
		sum.Revenue = sum.Revenue.Add(s.Revenue)
		sum.Cost = sum.Cost.Add(s.Cost)
		sum.Profit = sum.Profit.Add(s.Profit)
	}
	if !found {
		return nil
	}
	return sum
}

// DrinkSales is the aggregated position of a single drink within one day.
type DrinkSales struct {
	Drink    string
	Quantity int
	Revenue  Money
	Cost     Money
	Profit   Money
}

// SalesSummary holds one day's totals together with a per-drink breakdown.
type SalesSummary struct {
	Date      Date
	Revenue   Money
	Cost      Money
	Profit    Money
	Breakdown []DrinkSales // grouped sums, ordered by drink name
}

// SalesSummary aggregates the sales of the given day and groups them by
// drink. Like DailySummary it returns nil when the day has no sales.
// Both are pure queries: calling them twice without an intervening append
// yields identical results.
func (l *Ledger) SalesSummary(on Date) *SalesSummary {
	byDrink := make(map[string]*DrinkSales)
	sum := &SalesSummary{Date: on}
	found := false
	for s := range l.on(on) {
		found = true
		sum.Revenue = sum.Revenue.Add(s.Revenue)
		sum.Cost = sum.Cost.Add(s.Cost)
		sum.Profit = sum.Profit.Add(s.Profit)

		g, ok := byDrink[s.Drink]
		if !ok {
			g = &DrinkSales{Drink: s.Drink}
			byDrink[s.Drink] = g
		}
		g.Quantity += s.Quantity
		g.Revenue = g.Revenue.Add(s.Revenue)
		g.Cost = g.Cost.Add(s.Cost)
		g.Profit = g.Profit.Add(s.Profit)
	}
	if !found {
		return nil
	}

	drinks := make([]string, 0, len(byDrink))
	for drink := range byDrink {
		drinks = append(drinks, drink)
	}
	sort.Strings(drinks)
	for _, drink := range drinks {
		sum.Breakdown = append(sum.Breakdown, *byDrink[drink])
	}
	return sum
}

// ByDrink returns the breakdown entries for the given drink. A drink with
// no sales that day yields an empty slice, not an error.
func (s *SalesSummary) ByDrink(drink string) []DrinkSales {
	var out []DrinkSales
	for _, g := range s.Breakdown {
		if g.Drink == drink {
			out = append(out, g)
		}
	}
	return out
}
