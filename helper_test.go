package barista

// Helpers shared by the package tests. The catalog and inventory mirror the
// documented scenarios: a Latte priced 4.00 consuming 2 milk per unit, over
// a stock of 10 milk at 0.50 per unit.

func testCatalog() Catalog {
	return Catalog{
		"Latte": {
			Drink: "Latte",
			Price: M(4.0),
			Usage: map[string]Quantity{"milk": Q(2)},
		},
		"Americano": {
			Drink: "Americano",
			Price: M(3.0),
			Usage: map[string]Quantity{"beans": Q(1)}, // beans are not tracked in inventory
		},
	}
}

func testInventory() Inventory {
	return Inventory{
		"milk": {Ingredient: "milk", Stock: Q(10), CostPerUnit: M(0.5)},
	}
}

// newTestRegister pins the register's clock so sales land on a known date.
func newTestRegister(store Store, on Date) *Register {
	r := NewRegister(store)
	r.today = func() Date { return on }
	return r
}
