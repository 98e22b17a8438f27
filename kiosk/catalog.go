package kiosk

import (
	"context"
	"strings"
)

// Combo container names. Everything else returned by /api/containers is a
// per-unit pricing wrapper.
var comboContainerNames = map[string]bool{
	"Bowl":         true,
	"Plate":        true,
	"Bigger Plate": true,
}

// Catalog is the session's immutable snapshot of the menu and containers,
// fetched once at session start. Safe for concurrent reads.
type Catalog struct {
	Items  []MenuItem
	Combos []Container

	itemsByName  map[string]MenuItem
	combosByName map[string]Container
	appetizer    *Container
	drink        *Container
}

func LoadCatalog(ctx context.Context, client *Client) (*Catalog, error) {
	items, err := client.Menu(ctx)
	if err != nil {
		return nil, err
	}
	containers, err := client.Containers(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(items, containers), nil
}

// NewCatalog builds the snapshot from already-fetched data. Split out so
// tests can construct catalogs without a server.
func NewCatalog(items []MenuItem, containers []Container) *Catalog {
	ct := &Catalog{
		Items:        items,
		itemsByName:  make(map[string]MenuItem, len(items)),
		combosByName: make(map[string]Container),
	}
	for _, it := range items {
		ct.itemsByName[strings.ToLower(it.Name)] = it
	}
	for _, c := range containers {
		c := c
		switch {
		case comboContainerNames[c.Name]:
			ct.Combos = append(ct.Combos, c)
			ct.combosByName[strings.ToLower(c.Name)] = c
		case c.Name == "Appetizer":
			ct.appetizer = &c
		case c.Name == "Drink":
			ct.drink = &c
		}
	}
	return ct
}

// ItemsByType filters the menu snapshot: "Entree", "Side", "Appetizer",
// "Drink".
func (ct *Catalog) ItemsByType(t string) []MenuItem {
	var out []MenuItem
	for _, it := range ct.Items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}

func (ct *Catalog) Item(name string) (MenuItem, bool) {
	it, ok := ct.itemsByName[strings.ToLower(name)]
	return it, ok
}

func (ct *Catalog) Combo(name string) (Container, bool) {
	c, ok := ct.combosByName[strings.ToLower(name)]
	return c, ok
}

// UnitPrice resolves the per-unit price for appetizer or drink lines from
// the pricing wrapper containers.
func (ct *Catalog) UnitPrice(kind LineKind) (int64, error) {
	w, err := ct.wrapper(kind)
	if err != nil {
		return 0, err
	}
	return w.Price, nil
}

// WrapperID resolves the container id used when persisting appetizer/drink
// lines.
func (ct *Catalog) WrapperID(kind LineKind) (uint, error) {
	w, err := ct.wrapper(kind)
	if err != nil {
		return 0, err
	}
	return w.ContainerID, nil
}

func (ct *Catalog) wrapper(kind LineKind) (*Container, error) {
	switch kind {
	case KindAppetizer:
		if ct.appetizer == nil {
			return nil, ErrPriceUnavailable
		}
		return ct.appetizer, nil
	case KindDrink:
		if ct.drink == nil {
			return nil, ErrPriceUnavailable
		}
		return ct.drink, nil
	default:
		return nil, ErrPriceUnavailable
	}
}
