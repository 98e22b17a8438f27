package kiosk

import "testing"

func testCatalog() *Catalog {
	items := []MenuItem{
		{MenuID: 1, Name: "Orange Chicken", Type: "Entree", ExtraCost: 0},
		{MenuID: 2, Name: "Beijing Beef", Type: "Entree", ExtraCost: 0},
		{MenuID: 3, Name: "Honey Walnut Shrimp", Type: "Entree", ExtraCost: 150},
		{MenuID: 4, Name: "White Rice", Type: "Side", ExtraCost: 0},
		{MenuID: 5, Name: "Chow Mein", Type: "Side", ExtraCost: 0},
		{MenuID: 6, Name: "Chicken Egg Roll", Type: "Appetizer", ExtraCost: 0},
		{MenuID: 7, Name: "Dr Pepper", Type: "Drink", ExtraCost: 0},
		{MenuID: 8, Name: "Water", Type: "Drink", ExtraCost: 0},
	}
	containers := []Container{
		{ContainerID: 1, Name: "Bowl", Price: 830, NumberOfEntrees: 1, NumberOfSides: 1},
		{ContainerID: 2, Name: "Plate", Price: 980, NumberOfEntrees: 2, NumberOfSides: 1},
		{ContainerID: 3, Name: "Bigger Plate", Price: 1130, NumberOfEntrees: 3, NumberOfSides: 1},
		{ContainerID: 4, Name: "Appetizer", Price: 200},
		{ContainerID: 5, Name: "Drink", Price: 240},
	}
	return NewCatalog(items, containers)
}

func TestCatalogSplitsCombosFromWrappers(t *testing.T) {
	ct := testCatalog()

	if len(ct.Combos) != 3 {
		t.Fatalf("combos = %d, want 3", len(ct.Combos))
	}
	if _, ok := ct.Combo("Appetizer"); ok {
		t.Fatalf("Appetizer wrapper must not be selectable as a combo")
	}
	if _, ok := ct.Combo("bowl"); !ok {
		t.Fatalf("combo lookup should be case-insensitive")
	}
}

func TestCatalogWrapperPrices(t *testing.T) {
	ct := testCatalog()

	price, err := ct.UnitPrice(KindAppetizer)
	if err != nil {
		t.Fatalf("UnitPrice(appetizer): %v", err)
	}
	if price != 200 {
		t.Fatalf("appetizer unit price = %d, want 200", price)
	}
	id, err := ct.WrapperID(KindDrink)
	if err != nil {
		t.Fatalf("WrapperID(drink): %v", err)
	}
	if id != 5 {
		t.Fatalf("drink wrapper id = %d, want 5", id)
	}
}

func TestCatalogMissingWrapper(t *testing.T) {
	ct := NewCatalog(nil, []Container{
		{ContainerID: 1, Name: "Bowl", Price: 830, NumberOfEntrees: 1, NumberOfSides: 1},
	})

	if _, err := ct.UnitPrice(KindDrink); err != ErrPriceUnavailable {
		t.Fatalf("UnitPrice without wrapper = %v, want ErrPriceUnavailable", err)
	}
}

func TestCatalogItemsByType(t *testing.T) {
	ct := testCatalog()

	entrees := ct.ItemsByType("Entree")
	if len(entrees) != 3 {
		t.Fatalf("entrees = %d, want 3", len(entrees))
	}
	if _, ok := ct.Item("ORANGE CHICKEN"); !ok {
		t.Fatalf("item lookup should be case-insensitive")
	}
}
