package kiosk

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// PipelineState tracks where a submission is, both for progress display and
// for error reporting.
type PipelineState string

const (
	StateIdle                  PipelineState = "idle"
	StateCreatingOrder         PipelineState = "creatingOrder"
	StateCreatingOrderItems    PipelineState = "creatingOrderItems"
	StateCreatingMenuItemLinks PipelineState = "creatingMenuItemLinks"
	StateSucceeded             PipelineState = "succeeded"
	StateFailed                PipelineState = "failed"
)

// Submitter persists a cart through the Order API: one order row, one
// order-item row per cart line, then the menu-item link rows. Each stage
// fans out concurrently and completes before the next begins.
type Submitter struct {
	Client     *Client
	Catalog    *Catalog
	TaxRate    float64
	EmployeeID uint

	mu    sync.Mutex
	state PipelineState
}

func NewSubmitter(client *Client, catalog *Catalog, taxRate float64, employeeID uint) *Submitter {
	return &Submitter{
		Client:     client,
		Catalog:    catalog,
		TaxRate:    taxRate,
		EmployeeID: employeeID,
		state:      StateIdle,
	}
}

func (s *Submitter) State() PipelineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(st PipelineState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Tax rounds half-up on cents.
func Tax(subtotal int64, rate float64) int64 {
	return int64(float64(subtotal)*rate + 0.5)
}

// Submit persists the cart and returns the new order id. On success the
// cart is cleared; on any failure the cart is left intact and the returned
// *SubmitError names the failing stage and line. No network call is made
// for an empty cart.
func (s *Submitter) Submit(ctx context.Context, cart *Cart) (uint, error) {
	if cart.Len() == 0 {
		return 0, &SubmitError{State: StateIdle, Line: -1, Kind: ErrEmptyCart}
	}
	lines := cart.Lines()

	// Resolve wrapper container ids up front so a misconfigured catalog
	// fails before anything is written.
	containerIDs := make([]uint, len(lines))
	for i, line := range lines {
		switch line.Kind {
		case KindCombo:
			containerIDs[i] = line.Container.ContainerID
		default:
			id, err := s.Catalog.WrapperID(line.Kind)
			if err != nil {
				s.setState(StateFailed)
				return 0, &SubmitError{State: StateIdle, Line: i, Kind: ErrContainerResolutionFailed, Cause: err}
			}
			containerIDs[i] = id
		}
	}

	subtotal := cart.Total()
	total := subtotal + Tax(subtotal, s.TaxRate)

	s.setState(StateCreatingOrder)
	orderID, err := s.Client.CreateOrder(ctx, time.Now(), total, s.EmployeeID)
	if err != nil {
		s.setState(StateFailed)
		return 0, &SubmitError{State: StateCreatingOrder, Line: -1, Kind: ErrOrderCreationFailed, Cause: err}
	}

	// Stage 2: one order item per cart line. Combo lines are quantity 1;
	// simple lines carry their quantity.
	s.setState(StateCreatingOrderItems)
	orderItemIDs := make([]uint, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	var failMu sync.Mutex
	failLine := -1
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			qty := 1
			if line.Kind != KindCombo {
				qty = line.Quantity
			}
			id, err := s.Client.CreateOrderItem(gctx, orderID, containerIDs[i], qty)
			if err != nil {
				failMu.Lock()
				if failLine == -1 {
					failLine = i
				}
				failMu.Unlock()
				return err
			}
			orderItemIDs[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.setState(StateFailed)
		return 0, &SubmitError{State: StateCreatingOrderItems, Line: failLine, Kind: ErrItemLinkFailed, Cause: err}
	}

	// Stage 3: menu-item links. Combo lines get a quantity-1 link for the
	// side and for each entree unit; simple lines get one link carrying the
	// line quantity.
	s.setState(StateCreatingMenuItemLinks)
	g, gctx = errgroup.WithContext(ctx)
	failLine = -1
	for i, line := range lines {
		i, line := i, line
		link := func(menuID uint, qty int) {
			g.Go(func() error {
				if err := s.Client.CreateMenuItemLink(gctx, orderItemIDs[i], menuID, qty); err != nil {
					failMu.Lock()
					if failLine == -1 {
						failLine = i
					}
					failMu.Unlock()
					return err
				}
				return nil
			})
		}
		switch line.Kind {
		case KindCombo:
			if line.Side != nil {
				link(line.Side.MenuID, 1)
			}
			for _, sel := range line.Entrees {
				for u := 0; u < sel.Quantity; u++ {
					link(sel.Item.MenuID, 1)
				}
			}
		default:
			link(line.Item.MenuID, line.Quantity)
		}
	}
	if err := g.Wait(); err != nil {
		s.setState(StateFailed)
		return 0, &SubmitError{State: StateCreatingMenuItemLinks, Line: failLine, Kind: ErrItemLinkFailed, Cause: err}
	}

	cart.Clear()
	s.setState(StateSucceeded)
	return orderID, nil
}
