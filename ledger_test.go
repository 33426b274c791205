package barista

import (
	"reflect"
	"testing"
)

// twoDayLedger has two rows on 2024-01-01 (Latte qty 2, Mocha qty 1) and one
// row on 2024-01-02.
func twoDayLedger() *Ledger {
	l := NewLedger()
	l.Append(Sale{Date: MustDate("2024-01-01"), Drink: "Latte", Quantity: 2, Revenue: M(8.0), Cost: M(2.0), Profit: M(6.0)})
	l.Append(Sale{Date: MustDate("2024-01-01"), Drink: "Mocha", Quantity: 1, Revenue: M(4.5), Cost: M(1.5), Profit: M(3.0)})
	l.Append(Sale{Date: MustDate("2024-01-02"), Drink: "Latte", Quantity: 1, Revenue: M(4.0), Cost: M(1.0), Profit: M(3.0)})
	return l
}

func TestLedger_DailySummary(t *testing.T) {
	l := twoDayLedger()

	sum := l.DailySummary(MustDate("2024-01-01"))
	if sum == nil {
		t.Fatal("DailySummary() = nil, want a summary")
	}

	wantPerDrink := map[string]int{"Latte": 2, "Mocha": 1}
	if !reflect.DeepEqual(sum.PerDrink, wantPerDrink) {
		t.Errorf("PerDrink = %v, want %v", sum.PerDrink, wantPerDrink)
	}
	if !sum.Revenue.Equal(M(12.5)) {
		t.Errorf("revenue = %s, want 12.50", sum.Revenue.Text())
	}
	if !sum.Cost.Equal(M(3.5)) {
		t.Errorf("cost = %s, want 3.50", sum.Cost.Text())
	}
	if !sum.Profit.Equal(M(9.0)) {
		t.Errorf("profit = %s, want 9.00", sum.Profit.Text())
	}
}

func TestLedger_DailySummary_Absent(t *testing.T) {
	l := twoDayLedger()

	// A day with no sales reads as absent, not as a zero summary.
	if sum := l.DailySummary(MustDate("2024-01-03")); sum != nil {
		t.Errorf("DailySummary() = %+v, want nil", sum)
	}
}

func TestLedger_SalesSummary(t *testing.T) {
	l := twoDayLedger()

	sum := l.SalesSummary(MustDate("2024-01-01"))
	if sum == nil {
		t.Fatal("SalesSummary() = nil, want a summary")
	}
	if !sum.Revenue.Equal(M(12.5)) || !sum.Cost.Equal(M(3.5)) || !sum.Profit.Equal(M(9.0)) {
		t.Errorf("totals = %s/%s/%s, want 12.50/3.50/9.00", sum.Revenue.Text(), sum.Cost.Text(), sum.Profit.Text())
	}

	// Breakdown is grouped and ordered by drink name.
	if len(sum.Breakdown) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(sum.Breakdown))
	}
	if sum.Breakdown[0].Drink != "Latte" || sum.Breakdown[1].Drink != "Mocha" {
		t.Errorf("breakdown order = [%s %s], want [Latte Mocha]", sum.Breakdown[0].Drink, sum.Breakdown[1].Drink)
	}
	if sum.Breakdown[0].Quantity != 2 || !sum.Breakdown[0].Revenue.Equal(M(8.0)) {
		t.Errorf("Latte entry = %+v, want quantity 2 revenue 8.00", sum.Breakdown[0])
	}
}

func TestLedger_SalesSummary_Grouping(t *testing.T) {
	// Two rows of the same drink on the same day collapse into one entry.
	l := NewLedger()
	l.Append(Sale{Date: MustDate("2024-01-01"), Drink: "Latte", Quantity: 2, Revenue: M(8.0), Cost: M(2.0), Profit: M(6.0)})
	l.Append(Sale{Date: MustDate("2024-01-01"), Drink: "Latte", Quantity: 3, Revenue: M(12.0), Cost: M(3.0), Profit: M(9.0)})

	sum := l.SalesSummary(MustDate("2024-01-01"))
	if sum == nil {
		t.Fatal("SalesSummary() = nil, want a summary")
	}
	if len(sum.Breakdown) != 1 {
		t.Fatalf("breakdown has %d entries, want 1", len(sum.Breakdown))
	}
	g := sum.Breakdown[0]
	if g.Quantity != 5 || !g.Revenue.Equal(M(20.0)) || !g.Cost.Equal(M(5.0)) || !g.Profit.Equal(M(15.0)) {
		t.Errorf("grouped entry = %+v, want quantity 5, 20.00/5.00/15.00", g)
	}
}

func TestLedger_SalesSummary_Idempotent(t *testing.T) {
	l := twoDayLedger()
	on := MustDate("2024-01-01")

	first := l.SalesSummary(on)
	second := l.SalesSummary(on)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two identical queries differ:\n%+v\n%+v", first, second)
	}
}

func TestSalesSummary_ByDrink(t *testing.T) {
	l := twoDayLedger()
	sum := l.SalesSummary(MustDate("2024-01-01"))

	latte := sum.ByDrink("Latte")
	if len(latte) != 1 || latte[0].Quantity != 2 {
		t.Errorf("ByDrink(Latte) = %+v, want one entry with quantity 2", latte)
	}

	// No match is an empty result, not an error.
	if got := sum.ByDrink("Flat White"); len(got) != 0 {
		t.Errorf("ByDrink(Flat White) = %+v, want empty", got)
	}
}

func TestLedger_ChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.Append(Sale{Date: MustDate("2024-01-05"), Drink: "Latte", Quantity: 1})
	l.Append(Sale{Date: MustDate("2024-01-03"), Drink: "Mocha", Quantity: 1})
	l.Append(Sale{Date: MustDate("2024-01-04"), Drink: "Latte", Quantity: 1})

	var dates []string
	for s := range l.Sales() {
		dates = append(dates, s.Date.String())
	}
	want := []string{"2024-01-03", "2024-01-04", "2024-01-05"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("sales order = %v, want %v", dates, want)
	}
}
