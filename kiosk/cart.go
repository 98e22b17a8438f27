package kiosk

// Cart is an ordered list of committed order lines. Insertion order is
// display order. One cart per session; no concurrent writers.
type Cart struct {
	lines []OrderLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy; the cart's own slice is never aliased out.
func (c *Cart) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *Cart) Line(index int) (OrderLine, error) {
	if index < 0 || index >= len(c.lines) {
		return OrderLine{}, ErrIndexOutOfRange
	}
	return c.lines[index], nil
}

// Append adds to the end. No dedup: identical combos stay distinct lines.
func (c *Cart) Append(line OrderLine) {
	c.lines = append(c.lines, line)
}

// Replace swaps the line at index, used by edit flows.
func (c *Cart) Replace(index int, line OrderLine) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines[index] = line
	return nil
}

func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// RemoveSubItem removes one unit of the named item from inside the line:
// the side, one unit of an entree, or one unit of a simple item. When the
// removal empties the line it is removed from the cart outright.
func (c *Cart) RemoveSubItem(index int, itemName string) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	line := c.lines[index]

	switch line.Kind {
	case KindCombo:
		removed := false
		if line.Side != nil && line.Side.Name == itemName {
			line.Side = nil
			removed = true
		}
		if !removed {
			for i := range line.Entrees {
				if line.Entrees[i].Item.Name != itemName {
					continue
				}
				line.Entrees = append([]EntreeSelection(nil), line.Entrees...)
				line.Entrees[i].Quantity--
				if line.Entrees[i].Quantity == 0 {
					line.Entrees = append(line.Entrees[:i], line.Entrees[i+1:]...)
				}
				removed = true
				break
			}
		}
		if !removed {
			return ErrItemNotAvailable
		}
		if line.Side == nil && len(line.Entrees) == 0 {
			return c.RemoveLine(index)
		}
		line.Subtotal = comboSubtotal(line)
		c.lines[index] = line
		return nil

	case KindAppetizer, KindDrink:
		if line.Item.Name != itemName {
			return ErrItemNotAvailable
		}
		line.Quantity--
		if line.Quantity == 0 {
			return c.RemoveLine(index)
		}
		line.Subtotal = line.UnitPrice * int64(line.Quantity)
		c.lines[index] = line
		return nil
	}
	return ErrItemNotAvailable
}

// Total is recomputed on every read; it is never cached across mutations.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Subtotal
	}
	return total
}

// Clear empties the cart. Only the submission pipeline calls this, after a
// confirmed successful submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// Repriced subtotal for a combo line whose selections changed after a
// sub-item removal; the combo may be temporarily short of its quota.
func comboSubtotal(line OrderLine) int64 {
	subtotal := line.Container.Price
	if line.Side != nil {
		subtotal += line.Side.ExtraCost
	}
	for _, sel := range line.Entrees {
		subtotal += sel.Item.ExtraCost * int64(sel.Quantity)
	}
	return subtotal
}
