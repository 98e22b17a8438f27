package kiosk

// LineKind tags the OrderLine variant.
type LineKind int

const (
	KindCombo LineKind = iota
	KindAppetizer
	KindDrink
)

func (k LineKind) String() string {
	switch k {
	case KindCombo:
		return "Combo"
	case KindAppetizer:
		return "Appetizer"
	case KindDrink:
		return "Drink"
	}
	return "Unknown"
}

// EntreeSelection is one entree choice within a combo, quantity >= 1.
type EntreeSelection struct {
	Item     MenuItem
	Quantity int
}

// OrderLine is one priced cart entry. Combo lines carry Container, Side and
// Entrees; Appetizer/Drink lines carry Item, Quantity and UnitPrice. A line
// is immutable once in the cart and replaced wholesale on edit.
type OrderLine struct {
	Kind LineKind

	// Combo fields
	Container Container
	Side      *MenuItem
	Entrees   []EntreeSelection

	// Simple-item fields
	Item      MenuItem
	Quantity  int
	UnitPrice int64

	Subtotal int64
}

// BuildCombo validates quotas and prices a combo line:
// subtotal = container.price + side.extra_cost + sum(entree.extra_cost * qty).
func BuildCombo(container Container, side *MenuItem, entrees []EntreeSelection) (OrderLine, error) {
	if container.NumberOfSides > 0 && side == nil {
		return OrderLine{}, ErrIncompleteCombo
	}
	total := 0
	for _, sel := range entrees {
		if sel.Quantity <= 0 {
			return OrderLine{}, ErrInvalidQuantity
		}
		total += sel.Quantity
	}
	if total != container.NumberOfEntrees {
		return OrderLine{}, ErrIncompleteCombo
	}

	subtotal := container.Price
	if side != nil {
		subtotal += side.ExtraCost
	}
	for _, sel := range entrees {
		subtotal += sel.Item.ExtraCost * int64(sel.Quantity)
	}

	line := OrderLine{
		Kind:      KindCombo,
		Container: container,
		Side:      side,
		Entrees:   append([]EntreeSelection(nil), entrees...),
		Subtotal:  subtotal,
	}
	return line, nil
}

// BuildSimpleItem prices an appetizer or drink line at the kind's per-unit
// wrapper price.
func (ct *Catalog) BuildSimpleItem(kind LineKind, item MenuItem, quantity int) (OrderLine, error) {
	if kind != KindAppetizer && kind != KindDrink {
		return OrderLine{}, ErrItemNotAvailable
	}
	if quantity <= 0 {
		return OrderLine{}, ErrInvalidQuantity
	}
	unit, err := ct.UnitPrice(kind)
	if err != nil {
		return OrderLine{}, err
	}
	return OrderLine{
		Kind:      kind,
		Item:      item,
		Quantity:  quantity,
		UnitPrice: unit,
		Subtotal:  unit * int64(quantity),
	}, nil
}
