package kiosk

import "testing"

func comboLine(t *testing.T, ct *Catalog, comboName, sideName string, entrees ...EntreeSelection) OrderLine {
	t.Helper()
	combo, ok := ct.Combo(comboName)
	if !ok {
		t.Fatalf("no combo %q", comboName)
	}
	side, ok := ct.Item(sideName)
	if !ok {
		t.Fatalf("no side %q", sideName)
	}
	line, err := BuildCombo(combo, &side, entrees)
	if err != nil {
		t.Fatalf("BuildCombo(%s): %v", comboName, err)
	}
	return line
}

func TestCartTotalRecomputes(t *testing.T) {
	ct := testCatalog()
	chicken, _ := ct.Item("Orange Chicken")
	water, _ := ct.Item("Water")

	cart := NewCart()
	cart.Append(comboLine(t, ct, "Bowl", "White Rice", EntreeSelection{Item: chicken, Quantity: 1}))
	drink, err := ct.BuildSimpleItem(KindDrink, water, 2)
	if err != nil {
		t.Fatalf("BuildSimpleItem: %v", err)
	}
	cart.Append(drink)

	if got := cart.Total(); got != 830+480 {
		t.Fatalf("total = %d, want %d", got, 830+480)
	}

	if err := cart.RemoveLine(1); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if got := cart.Total(); got != 830 {
		t.Fatalf("total after removal = %d, want 830", got)
	}
}

func TestCartIdenticalLinesStayDistinct(t *testing.T) {
	ct := testCatalog()
	chicken, _ := ct.Item("Orange Chicken")

	cart := NewCart()
	line := comboLine(t, ct, "Bowl", "White Rice", EntreeSelection{Item: chicken, Quantity: 1})
	cart.Append(line)
	cart.Append(line)

	if cart.Len() != 2 {
		t.Fatalf("len = %d, want 2 distinct lines", cart.Len())
	}
}

func TestCartRemoveSubItemReprices(t *testing.T) {
	ct := testCatalog()
	chicken, _ := ct.Item("Orange Chicken")
	shrimp, _ := ct.Item("Honey Walnut Shrimp")

	cart := NewCart()
	cart.Append(comboLine(t, ct, "Plate", "White Rice",
		EntreeSelection{Item: chicken, Quantity: 1},
		EntreeSelection{Item: shrimp, Quantity: 1},
	))

	if err := cart.RemoveSubItem(0, "Honey Walnut Shrimp"); err != nil {
		t.Fatalf("RemoveSubItem: %v", err)
	}
	line, _ := cart.Line(0)
	if len(line.Entrees) != 1 {
		t.Fatalf("entrees = %d, want 1", len(line.Entrees))
	}
	// Premium dropped with the shrimp; base plate price remains.
	if line.Subtotal != 980 {
		t.Fatalf("subtotal = %d, want 980", line.Subtotal)
	}
}

func TestCartRemoveLastSubItemRemovesLine(t *testing.T) {
	ct := testCatalog()
	chicken, _ := ct.Item("Orange Chicken")

	cart := NewCart()
	cart.Append(comboLine(t, ct, "Bowl", "White Rice", EntreeSelection{Item: chicken, Quantity: 1}))

	if err := cart.RemoveSubItem(0, "White Rice"); err != nil {
		t.Fatalf("remove side: %v", err)
	}
	if err := cart.RemoveSubItem(0, "Orange Chicken"); err != nil {
		t.Fatalf("remove entree: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("len = %d, want 0 after emptying the line", cart.Len())
	}
}

func TestCartRemoveSubItemSimpleDecrements(t *testing.T) {
	ct := testCatalog()
	water, _ := ct.Item("Water")

	cart := NewCart()
	line, err := ct.BuildSimpleItem(KindDrink, water, 2)
	if err != nil {
		t.Fatalf("BuildSimpleItem: %v", err)
	}
	cart.Append(line)

	if err := cart.RemoveSubItem(0, "Water"); err != nil {
		t.Fatalf("RemoveSubItem: %v", err)
	}
	got, _ := cart.Line(0)
	if got.Quantity != 1 || got.Subtotal != 240 {
		t.Fatalf("quantity=%d subtotal=%d, want 1/240", got.Quantity, got.Subtotal)
	}

	if err := cart.RemoveSubItem(0, "Water"); err != nil {
		t.Fatalf("RemoveSubItem: %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("len = %d, want 0 after last unit removed", cart.Len())
	}
}

func TestCartIndexOutOfRange(t *testing.T) {
	cart := NewCart()
	if err := cart.RemoveLine(0); err != ErrIndexOutOfRange {
		t.Fatalf("RemoveLine on empty cart = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := cart.Line(-1); err != ErrIndexOutOfRange {
		t.Fatalf("Line(-1) = %v, want ErrIndexOutOfRange", err)
	}
}
