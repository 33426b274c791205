package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/barista"
)

func testSummary() *barista.SalesSummary {
	return &barista.SalesSummary{
		Date:    barista.MustDate("2024-01-01"),
		Revenue: barista.M(12.5),
		Cost:    barista.M(3.5),
		Profit:  barista.M(9.0),
		Breakdown: []barista.DrinkSales{
			{Drink: "Latte", Quantity: 2, Revenue: barista.M(8.0), Cost: barista.M(2.0), Profit: barista.M(6.0)},
			{Drink: "Mocha", Quantity: 1, Revenue: barista.M(4.5), Cost: barista.M(1.5), Profit: barista.M(3.0)},
		},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(testSummary())

	for _, want := range []string{"2024-01-01", "Latte", "Mocha", "$12.50", "$9.00", "Breakdown by Drink"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown does not mention %q:\n%s", want, md)
		}
	}
}

func TestSummaryMarkdown_Absent(t *testing.T) {
	md := SummaryMarkdown(nil)
	if !strings.Contains(md, "No sales") {
		t.Errorf("nil summary should render as a no-sales note, got:\n%s", md)
	}
}

func TestDailyMarkdown(t *testing.T) {
	s := &barista.DailySummary{
		Date:     barista.MustDate("2024-01-01"),
		PerDrink: map[string]int{"Latte": 2},
		Revenue:  barista.M(8.0),
		Cost:     barista.M(2.0),
		Profit:   barista.M(6.0),
	}
	md := DailyMarkdown(s)

	for _, want := range []string{"Daily Summary", "Latte", "$8.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("daily markdown does not mention %q:\n%s", want, md)
		}
	}

	if md := DailyMarkdown(nil); !strings.Contains(md, "No sales") {
		t.Errorf("nil summary should render as a no-sales note, got:\n%s", md)
	}
}

func TestMenuMarkdown(t *testing.T) {
	catalog := barista.Catalog{
		"Latte": {Drink: "Latte", Price: barista.M(4.0), Usage: map[string]barista.Quantity{"milk": barista.Q(2)}},
		"Water": {Drink: "Water", Price: barista.M(1.0)},
	}
	md := MenuMarkdown(catalog)

	for _, want := range []string{"Latte", "$4.00", "2 × milk", "(none)"} {
		if !strings.Contains(md, want) {
			t.Errorf("menu markdown does not mention %q:\n%s", want, md)
		}
	}
}

func TestStockMarkdown(t *testing.T) {
	inventory := barista.Inventory{
		"milk": {Ingredient: "milk", Stock: barista.Q(10), CostPerUnit: barista.M(0.5)},
	}
	md := StockMarkdown(inventory)

	for _, want := range []string{"Inventory", "milk", "10", "$0.50"} {
		if !strings.Contains(md, want) {
			t.Errorf("stock markdown does not mention %q:\n%s", want, md)
		}
	}
}
