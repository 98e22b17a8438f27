package kiosk

import "testing"

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(sev Severity, msg string) {
	r.messages = append(r.messages, string(sev)+": "+msg)
}

func (r *recordingNotifier) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func buildPlate(t *testing.T, s *Session) {
	t.Helper()
	if err := s.SelectCategory("combos"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := s.SelectCombo("Plate"); err != nil {
		t.Fatalf("SelectCombo: %v", err)
	}
	if err := s.SelectSide("White Rice"); err != nil {
		t.Fatalf("SelectSide: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.IncrementEntree("Orange Chicken"); err != nil {
		t.Fatalf("IncrementEntree: %v", err)
	}
	if err := s.IncrementEntree("Beijing Beef"); err != nil {
		t.Fatalf("IncrementEntree: %v", err)
	}
	if err := s.CommitCombo(); err != nil {
		t.Fatalf("CommitCombo: %v", err)
	}
}

func TestSessionComboFlow(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(testCatalog(), n)

	if s.Step() != StepCategorySelection {
		t.Fatalf("initial step = %s", s.Step())
	}
	buildPlate(t, s)

	if s.Step() != StepCategorySelection {
		t.Fatalf("step after commit = %s, want categorySelection", s.Step())
	}
	if s.Cart.Len() != 1 {
		t.Fatalf("cart len = %d, want 1", s.Cart.Len())
	}
	if got := s.Cart.Total(); got != 980 {
		t.Fatalf("cart total = %d, want 980", got)
	}
	if n.last() != "success: Combo added to cart." {
		t.Fatalf("last notification = %q", n.last())
	}
}

func TestSessionQuotaEnforced(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(testCatalog(), n)

	s.SelectCategory("combos")
	s.SelectCombo("Bowl")
	s.SelectSide("Chow Mein")
	s.Next()

	if err := s.IncrementEntree("Orange Chicken"); err != nil {
		t.Fatalf("first entree: %v", err)
	}
	if err := s.IncrementEntree("Beijing Beef"); err != ErrQuotaExceeded {
		t.Fatalf("over-quota entree = %v, want ErrQuotaExceeded", err)
	}
	// Rejection leaves the selection unchanged and the combo committable.
	if err := s.CommitCombo(); err != nil {
		t.Fatalf("CommitCombo after rejection: %v", err)
	}
}

func TestSessionNextRequiresSide(t *testing.T) {
	s := NewSession(testCatalog(), nil)

	s.SelectCategory("combos")
	s.SelectCombo("Plate")
	if err := s.Next(); err != ErrIncompleteCombo {
		t.Fatalf("Next without side = %v, want ErrIncompleteCombo", err)
	}
	if s.Step() != StepSideSelection {
		t.Fatalf("step = %s, want sideSelection", s.Step())
	}
}

func TestSessionSideDoesNotAutoAdvance(t *testing.T) {
	s := NewSession(testCatalog(), nil)

	s.SelectCategory("combos")
	s.SelectCombo("Bowl")
	if err := s.SelectSide("White Rice"); err != nil {
		t.Fatalf("SelectSide: %v", err)
	}
	if s.Step() != StepSideSelection {
		t.Fatalf("step = %s, side selection must not auto-advance", s.Step())
	}
	// Re-picking replaces the side.
	if err := s.SelectSide("Chow Mein"); err != nil {
		t.Fatalf("re-pick side: %v", err)
	}
	_, side, _ := s.Selection()
	if side.Name != "Chow Mein" {
		t.Fatalf("side = %s, want Chow Mein", side.Name)
	}
}

func TestSessionDecrementCompacts(t *testing.T) {
	s := NewSession(testCatalog(), nil)

	s.SelectCategory("combos")
	s.SelectCombo("Plate")
	s.SelectSide("White Rice")
	s.Next()
	s.IncrementEntree("Orange Chicken")
	s.IncrementEntree("Orange Chicken")

	if err := s.DecrementEntree("Orange Chicken"); err != nil {
		t.Fatalf("DecrementEntree: %v", err)
	}
	_, _, entrees := s.Selection()
	if len(entrees) != 1 || entrees[0].Quantity != 1 {
		t.Fatalf("entrees = %+v, want one selection of quantity 1", entrees)
	}

	if err := s.DecrementEntree("Orange Chicken"); err != nil {
		t.Fatalf("DecrementEntree: %v", err)
	}
	_, _, entrees = s.Selection()
	if len(entrees) != 0 {
		t.Fatalf("entrees = %+v, want empty after reaching zero", entrees)
	}
}

func TestSessionBack(t *testing.T) {
	s := NewSession(testCatalog(), nil)

	s.SelectCategory("combos")
	s.SelectCombo("Plate")
	s.SelectSide("White Rice")
	s.Next()

	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.Step() != StepSideSelection {
		t.Fatalf("step = %s, want sideSelection", s.Step())
	}
	s.Back()
	if s.Step() != StepComboSelection {
		t.Fatalf("step = %s, want comboSelection", s.Step())
	}
	s.Back()
	if s.Step() != StepCategorySelection {
		t.Fatalf("step = %s, want categorySelection", s.Step())
	}
	if err := s.Back(); err != ErrInvalidStep {
		t.Fatalf("Back at root = %v, want ErrInvalidStep", err)
	}
}

func TestSessionSimpleItemFlow(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(testCatalog(), n)

	if err := s.SelectCategory("drinks"); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if err := s.AddSimpleItem("Dr Pepper", 2); err != nil {
		t.Fatalf("AddSimpleItem: %v", err)
	}
	if s.Cart.Total() != 480 {
		t.Fatalf("total = %d, want 480", s.Cart.Total())
	}
	if s.Step() != StepCategorySelection {
		t.Fatalf("step = %s, want categorySelection", s.Step())
	}

	s.SelectCategory("appetizers")
	if err := s.AddSimpleItem("Dr Pepper", 1); err != ErrItemNotAvailable {
		t.Fatalf("drink in appetizer step = %v, want ErrItemNotAvailable", err)
	}
}

func TestSessionUnknownCategory(t *testing.T) {
	n := &recordingNotifier{}
	s := NewSession(testCatalog(), n)

	if err := s.SelectCategory("desserts"); err != ErrUnknownCategory {
		t.Fatalf("SelectCategory = %v, want ErrUnknownCategory", err)
	}
	if s.Step() != StepCategorySelection {
		t.Fatalf("step = %s, must stay at categorySelection", s.Step())
	}
}

func TestSessionEditLineReplacesInPlace(t *testing.T) {
	s := NewSession(testCatalog(), nil)
	buildPlate(t, s)
	s.SelectCategory("drinks")
	s.AddSimpleItem("Water", 1)

	if err := s.EditLine(0); err != nil {
		t.Fatalf("EditLine: %v", err)
	}
	if s.Step() != StepEntreeSelection {
		t.Fatalf("step = %s, want entreeSelection", s.Step())
	}
	if err := s.DecrementEntree("Beijing Beef"); err != nil {
		t.Fatalf("DecrementEntree: %v", err)
	}
	if err := s.IncrementEntree("Honey Walnut Shrimp"); err != nil {
		t.Fatalf("IncrementEntree: %v", err)
	}
	if err := s.CommitCombo(); err != nil {
		t.Fatalf("CommitCombo: %v", err)
	}

	if s.Cart.Len() != 2 {
		t.Fatalf("cart len = %d, edit must replace not append", s.Cart.Len())
	}
	line, _ := s.Cart.Line(0)
	if line.Subtotal != 1130 {
		t.Fatalf("edited subtotal = %d, want 1130 with shrimp premium", line.Subtotal)
	}
}

func TestSessionBackCancelsEdit(t *testing.T) {
	s := NewSession(testCatalog(), nil)
	buildPlate(t, s)

	if err := s.EditLine(0); err != nil {
		t.Fatalf("EditLine: %v", err)
	}
	if err := s.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if s.Step() != StepCategorySelection {
		t.Fatalf("step = %s, want categorySelection after cancelling edit", s.Step())
	}

	// A fresh combo after a cancelled edit must append, not replace line 0.
	buildPlate(t, s)
	if s.Cart.Len() != 2 {
		t.Fatalf("cart len = %d, want 2", s.Cart.Len())
	}
}

func TestSessionWrongStepRejected(t *testing.T) {
	s := NewSession(testCatalog(), nil)

	if err := s.SelectCombo("Bowl"); err != ErrInvalidStep {
		t.Fatalf("SelectCombo at category step = %v, want ErrInvalidStep", err)
	}
	if err := s.IncrementEntree("Orange Chicken"); err != ErrInvalidStep {
		t.Fatalf("IncrementEntree at category step = %v, want ErrInvalidStep", err)
	}
	if err := s.CommitCombo(); err != ErrInvalidStep {
		t.Fatalf("CommitCombo at category step = %v, want ErrInvalidStep", err)
	}
}
