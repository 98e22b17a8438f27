package kiosk

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Step is the session's position in the selection flow.
type Step string

const (
	StepCategorySelection  Step = "categorySelection"
	StepComboSelection     Step = "comboSelection"
	StepSideSelection      Step = "sideSelection"
	StepEntreeSelection    Step = "entreeSelection"
	StepAppetizerSelection Step = "appetizerSelection"
	StepDrinkSelection     Step = "drinkSelection"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives user-visible feedback for every transition and error.
type Notifier interface {
	Notify(sev Severity, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(sev Severity, msg string)

func (f NotifierFunc) Notify(sev Severity, msg string) { f(sev, msg) }

// Session owns one customer's ordering flow: the catalog snapshot, the
// selection state machine and the cart. Created on session start, discarded
// at the end; never shared between users.
type Session struct {
	ID      string
	Catalog *Catalog
	Cart    *Cart

	step    Step
	combo   *Container
	side    *MenuItem
	entrees []EntreeSelection

	// editIndex is the cart line being edited, -1 otherwise.
	editIndex int

	notifier Notifier
}

func NewSession(catalog *Catalog, notifier Notifier) *Session {
	if notifier == nil {
		notifier = NotifierFunc(func(Severity, string) {})
	}
	return &Session{
		ID:        uuid.NewString(),
		Catalog:   catalog,
		Cart:      NewCart(),
		step:      StepCategorySelection,
		editIndex: -1,
		notifier:  notifier,
	}
}

func (s *Session) Step() Step { return s.step }

// Selection returns the in-progress combo state, for rendering.
func (s *Session) Selection() (combo *Container, side *MenuItem, entrees []EntreeSelection) {
	return s.combo, s.side, append([]EntreeSelection(nil), s.entrees...)
}

// SelectCategory routes from categorySelection. Picking "combos" resets any
// in-progress combo state.
func (s *Session) SelectCategory(category string) error {
	if s.step != StepCategorySelection {
		return ErrInvalidStep
	}
	switch strings.ToLower(category) {
	case "combos":
		s.resetCombo()
		s.step = StepComboSelection
	case "appetizers":
		s.step = StepAppetizerSelection
	case "drinks":
		s.step = StepDrinkSelection
	default:
		s.notifier.Notify(SeverityError, fmt.Sprintf("Category %q is not available.", category))
		return ErrUnknownCategory
	}
	return nil
}

// SelectCombo sets the active container and advances to side selection.
func (s *Session) SelectCombo(name string) error {
	if s.step != StepComboSelection {
		return ErrInvalidStep
	}
	combo, ok := s.Catalog.Combo(name)
	if !ok {
		s.notifier.Notify(SeverityError, fmt.Sprintf("Combo %q is not available.", name))
		return ErrItemNotAvailable
	}
	s.combo = &combo
	s.step = StepSideSelection
	return nil
}

// SelectSide sets the active side. It does not advance; Next is the
// explicit advance action.
func (s *Session) SelectSide(name string) error {
	if s.step != StepSideSelection {
		return ErrInvalidStep
	}
	item, ok := s.Catalog.Item(name)
	if !ok || item.Type != "Side" {
		s.notifier.Notify(SeverityError, fmt.Sprintf("Side %q is not available.", name))
		return ErrItemNotAvailable
	}
	s.side = &item
	return nil
}

// Next advances from side selection to entree selection once a side is set.
func (s *Session) Next() error {
	if s.step != StepSideSelection {
		return ErrInvalidStep
	}
	if s.side == nil {
		s.notifier.Notify(SeverityWarning, "Please select a side to continue.")
		return ErrIncompleteCombo
	}
	s.step = StepEntreeSelection
	return nil
}

// IncrementEntree adds one unit of the named entree, subject to the active
// combo's quota. Rejection leaves the selection unchanged.
func (s *Session) IncrementEntree(name string) error {
	if s.step != StepEntreeSelection {
		return ErrInvalidStep
	}
	item, ok := s.Catalog.Item(name)
	if !ok || item.Type != "Entree" {
		s.notifier.Notify(SeverityError, fmt.Sprintf("Entree %q is not available.", name))
		return ErrItemNotAvailable
	}
	if s.entreeCount() >= s.combo.NumberOfEntrees {
		s.notifier.Notify(SeverityWarning,
			fmt.Sprintf("You can select up to %d entree(s) for a %s.", s.combo.NumberOfEntrees, s.combo.Name))
		return ErrQuotaExceeded
	}
	for i := range s.entrees {
		if s.entrees[i].Item.MenuID == item.MenuID {
			s.entrees[i].Quantity++
			return nil
		}
	}
	s.entrees = append(s.entrees, EntreeSelection{Item: item, Quantity: 1})
	return nil
}

// DecrementEntree removes one unit; an entry reaching zero is dropped so no
// zero-quantity selections ever persist.
func (s *Session) DecrementEntree(name string) error {
	if s.step != StepEntreeSelection {
		return ErrInvalidStep
	}
	for i := range s.entrees {
		if !strings.EqualFold(s.entrees[i].Item.Name, name) {
			continue
		}
		s.entrees[i].Quantity--
		if s.entrees[i].Quantity <= 0 {
			s.entrees = append(s.entrees[:i], s.entrees[i+1:]...)
		}
		return nil
	}
	s.notifier.Notify(SeverityError, fmt.Sprintf("Entree %q is not in your selection.", name))
	return ErrItemNotAvailable
}

// CommitCombo builds the combo line, appends it (or replaces the line being
// edited), resets the selection and returns to category selection.
func (s *Session) CommitCombo() error {
	if s.step != StepEntreeSelection {
		return ErrInvalidStep
	}
	if s.combo == nil || s.side == nil {
		s.notifier.Notify(SeverityWarning, "Please complete your combo selection.")
		return ErrIncompleteCombo
	}
	line, err := BuildCombo(*s.combo, s.side, s.entrees)
	if err != nil {
		s.notifier.Notify(SeverityWarning,
			fmt.Sprintf("Please select %d entree(s) for your combo.", s.combo.NumberOfEntrees))
		return err
	}

	if s.editIndex >= 0 {
		if err := s.Cart.Replace(s.editIndex, line); err != nil {
			return err
		}
		s.notifier.Notify(SeveritySuccess, "Combo updated.")
	} else {
		s.Cart.Append(line)
		s.notifier.Notify(SeveritySuccess, "Combo added to cart.")
	}
	s.resetCombo()
	s.step = StepCategorySelection
	return nil
}

// AddSimpleItem commits an appetizer or drink line directly from its
// selection step.
func (s *Session) AddSimpleItem(name string, quantity int) error {
	var kind LineKind
	var wantType string
	switch s.step {
	case StepAppetizerSelection:
		kind, wantType = KindAppetizer, "Appetizer"
	case StepDrinkSelection:
		kind, wantType = KindDrink, "Drink"
	default:
		return ErrInvalidStep
	}

	item, ok := s.Catalog.Item(name)
	if !ok || item.Type != wantType {
		s.notifier.Notify(SeverityError, fmt.Sprintf("%s %q is not available.", wantType, name))
		return ErrItemNotAvailable
	}
	line, err := s.Catalog.BuildSimpleItem(kind, item, quantity)
	if err != nil {
		switch {
		case err == ErrInvalidQuantity:
			s.notifier.Notify(SeverityWarning, "Quantity must be at least 1.")
		case err == ErrPriceUnavailable:
			s.notifier.Notify(SeverityError, fmt.Sprintf("No price is configured for %ss.", wantType))
		}
		return err
	}
	s.Cart.Append(line)
	s.notifier.Notify(SeveritySuccess, fmt.Sprintf("%s added to cart.", item.Name))
	s.step = StepCategorySelection
	return nil
}

// Back steps one logical step backwards with no other side effects. From
// entree selection during an edit it cancels the edit.
func (s *Session) Back() error {
	switch s.step {
	case StepSideSelection:
		s.step = StepComboSelection
	case StepEntreeSelection:
		if s.editIndex >= 0 {
			s.editIndex = -1
			s.resetCombo()
			s.step = StepCategorySelection
			return nil
		}
		s.step = StepSideSelection
	case StepComboSelection, StepAppetizerSelection, StepDrinkSelection:
		s.step = StepCategorySelection
	default:
		return ErrInvalidStep
	}
	return nil
}

// EditLine reloads a committed combo line into the selection state so the
// customer can adjust it; commit then replaces the line in place.
func (s *Session) EditLine(index int) error {
	line, err := s.Cart.Line(index)
	if err != nil {
		return err
	}
	if line.Kind != KindCombo {
		return ErrItemNotAvailable
	}
	combo := line.Container
	s.combo = &combo
	s.side = line.Side
	s.entrees = append([]EntreeSelection(nil), line.Entrees...)
	s.editIndex = index
	s.step = StepEntreeSelection
	return nil
}

// RemoveLine removes a whole cart line.
func (s *Session) RemoveLine(index int) error {
	if err := s.Cart.RemoveLine(index); err != nil {
		return err
	}
	s.notifier.Notify(SeveritySuccess, "Item removed from order.")
	return nil
}

func (s *Session) entreeCount() int {
	total := 0
	for _, sel := range s.entrees {
		total += sel.Quantity
	}
	return total
}

func (s *Session) resetCombo() {
	s.combo = nil
	s.side = nil
	s.entrees = nil
	s.editIndex = -1
}
