package kiosk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeOrderAPI records submission traffic; safe for the pipeline's
// concurrent stages.
type fakeOrderAPI struct {
	mu             sync.Mutex
	orders         []createOrderReq
	orderItems     []createOrderItemReq
	menuItemLinks  []createMenuItemReq
	failOrders     bool
	failOrderItems bool
	failLinks      bool
}

func (f *fakeOrderAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failOrders {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		var req createOrderReq
		json.NewDecoder(r.Body).Decode(&req)
		f.orders = append(f.orders, req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]uint{"order_id": uint(len(f.orders))})
	})
	mux.HandleFunc("/api/order-items", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failOrderItems {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		var req createOrderItemReq
		json.NewDecoder(r.Body).Decode(&req)
		f.orderItems = append(f.orderItems, req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]uint{"order_item_id": uint(len(f.orderItems))})
	})
	mux.HandleFunc("/api/menu-items", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failLinks {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		var req createMenuItemReq
		json.NewDecoder(r.Body).Decode(&req)
		f.menuItemLinks = append(f.menuItemLinks, req)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{})
	})
	return mux
}

func (f *fakeOrderAPI) counts() (orders, items, links int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders), len(f.orderItems), len(f.menuItemLinks)
}

// twoLineCart: a Plate (side + 2 entrees) and a drink line of quantity 1.
func twoLineCart(t *testing.T, ct *Catalog) *Cart {
	t.Helper()
	chicken, _ := ct.Item("Orange Chicken")
	shrimp, _ := ct.Item("Honey Walnut Shrimp")
	water, _ := ct.Item("Water")

	cart := NewCart()
	cart.Append(comboLine(t, ct, "Plate", "White Rice",
		EntreeSelection{Item: chicken, Quantity: 1},
		EntreeSelection{Item: shrimp, Quantity: 1},
	))
	drink, err := ct.BuildSimpleItem(KindDrink, water, 1)
	if err != nil {
		t.Fatalf("BuildSimpleItem: %v", err)
	}
	cart.Append(drink)
	return cart
}

func TestSubmitHappyPath(t *testing.T) {
	fake := &fakeOrderAPI{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ct := testCatalog()
	cart := twoLineCart(t, ct)
	sub := NewSubmitter(NewClient(srv.URL), ct, 0.08, 7)

	orderID, err := sub.Submit(context.Background(), cart)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if orderID != 1 {
		t.Fatalf("order id = %d, want 1", orderID)
	}
	if sub.State() != StateSucceeded {
		t.Fatalf("state = %s, want succeeded", sub.State())
	}
	if cart.Len() != 0 {
		t.Fatalf("cart len = %d, must be cleared on success", cart.Len())
	}

	orders, items, links := fake.counts()
	if orders != 1 {
		t.Fatalf("order posts = %d, want 1", orders)
	}
	if items != 2 {
		t.Fatalf("order-item posts = %d, want one per cart line", items)
	}
	// Plate: 1 side link + 2 entree-unit links; drink: 1 link.
	if links != 4 {
		t.Fatalf("menu-item posts = %d, want 4", links)
	}
}

func TestSubmitTotalsIncludeTax(t *testing.T) {
	fake := &fakeOrderAPI{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ct := testCatalog()
	cart := twoLineCart(t, ct)
	subtotal := cart.Total() // 1130 + 240
	sub := NewSubmitter(NewClient(srv.URL), ct, 0.08, 7)

	if _, err := sub.Submit(context.Background(), cart); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := subtotal + Tax(subtotal, 0.08)
	if got := fake.orders[0].Total; got != want {
		t.Fatalf("posted total = %d, want %d", got, want)
	}
	if fake.orders[0].EmployeeID != 7 {
		t.Fatalf("employee id = %d, want 7", fake.orders[0].EmployeeID)
	}
}

func TestSubmitLinkQuantities(t *testing.T) {
	fake := &fakeOrderAPI{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ct := testCatalog()
	roll, _ := ct.Item("Chicken Egg Roll")
	cart := NewCart()
	line, err := ct.BuildSimpleItem(KindAppetizer, roll, 3)
	if err != nil {
		t.Fatalf("BuildSimpleItem: %v", err)
	}
	cart.Append(line)

	sub := NewSubmitter(NewClient(srv.URL), ct, 0.08, 1)
	if _, err := sub.Submit(context.Background(), cart); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(fake.orderItems) != 1 || fake.orderItems[0].Quantity != 3 {
		t.Fatalf("order item = %+v, want one row with quantity 3", fake.orderItems)
	}
	if fake.orderItems[0].ContainerID != 4 {
		t.Fatalf("container id = %d, want the appetizer wrapper", fake.orderItems[0].ContainerID)
	}
	if len(fake.menuItemLinks) != 1 || fake.menuItemLinks[0].Quantity != 3 {
		t.Fatalf("links = %+v, want one link carrying quantity 3", fake.menuItemLinks)
	}
}

func TestSubmitEmptyCartNoNetwork(t *testing.T) {
	fake := &fakeOrderAPI{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	sub := NewSubmitter(NewClient(srv.URL), testCatalog(), 0.08, 1)
	_, err := sub.Submit(context.Background(), NewCart())

	var serr *SubmitError
	if !errors.As(err, &serr) || !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want SubmitError wrapping ErrEmptyCart", err)
	}
	if orders, items, links := fake.counts(); orders+items+links != 0 {
		t.Fatalf("empty cart made %d/%d/%d requests, want none", orders, items, links)
	}
}

func TestSubmitOrderFailurePreservesCart(t *testing.T) {
	fake := &fakeOrderAPI{failOrders: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ct := testCatalog()
	cart := twoLineCart(t, ct)
	sub := NewSubmitter(NewClient(srv.URL), ct, 0.08, 1)

	_, err := sub.Submit(context.Background(), cart)
	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SubmitError", err)
	}
	if serr.State != StateCreatingOrder || !errors.Is(err, ErrOrderCreationFailed) {
		t.Fatalf("err = %v, want order-creation failure", err)
	}
	if sub.State() != StateFailed {
		t.Fatalf("state = %s, want failed", sub.State())
	}
	if cart.Len() != 2 {
		t.Fatalf("cart len = %d, must be preserved on failure", cart.Len())
	}
}

func TestSubmitLinkFailureReportsStage(t *testing.T) {
	fake := &fakeOrderAPI{failLinks: true}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	ct := testCatalog()
	cart := twoLineCart(t, ct)
	sub := NewSubmitter(NewClient(srv.URL), ct, 0.08, 1)

	_, err := sub.Submit(context.Background(), cart)
	var serr *SubmitError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SubmitError", err)
	}
	if serr.State != StateCreatingMenuItemLinks || !errors.Is(err, ErrItemLinkFailed) {
		t.Fatalf("err = %v, want link-stage failure", err)
	}
	if serr.Line < 0 || serr.Line >= cart.Len() {
		t.Fatalf("line = %d, want a valid cart line index", serr.Line)
	}
	if cart.Len() != 2 {
		t.Fatalf("cart len = %d, must be preserved on failure", cart.Len())
	}
}

func TestTaxRoundsHalfUp(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{1000, 80},  // 80.0
		{1030, 82},  // 82.4 -> 82
		{1060, 85},  // 84.8 -> 85
		{831, 66},   // 66.48 -> 66
		{2744, 220}, // 219.52 -> 220
	}
	for _, c := range cases {
		if got := Tax(c.subtotal, 0.08); got != c.want {
			t.Fatalf("Tax(%d) = %d, want %d", c.subtotal, got, c.want)
		}
	}
}
