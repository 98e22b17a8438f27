package kiosk

import (
	"errors"
	"fmt"
)

// User-input errors: recoverable, state unchanged.
var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrItemNotAvailable = errors.New("item not available")
	ErrQuotaExceeded    = errors.New("entree quota exceeded")
	ErrIncompleteCombo  = errors.New("incomplete combo")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidStep      = errors.New("action not allowed in current step")
)

// Data-integrity errors: the catalog is missing an expected pricing
// container, so no correct price can be computed. Blocking, not retryable.
var (
	ErrPriceUnavailable          = errors.New("price unavailable for kind")
	ErrContainerResolutionFailed = errors.New("container resolution failed")
)

// Submission errors: network/server failures inside the pipeline. The cart
// is preserved; there is no automatic retry.
var (
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrItemLinkFailed      = errors.New("item link creation failed")
)

// SubmitError reports which pipeline state failed and, when line-specific,
// which cart line (Line is -1 otherwise).
type SubmitError struct {
	State PipelineState
	Line  int
	Kind  error // one of the submission/data-integrity sentinels
	Cause error
}

func (e *SubmitError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("submit %s (line %d): %v: %v", e.State, e.Line, e.Kind, e.Cause)
	}
	if e.Cause == nil {
		return fmt.Sprintf("submit %s: %v", e.State, e.Kind)
	}
	return fmt.Sprintf("submit %s: %v: %v", e.State, e.Kind, e.Cause)
}

func (e *SubmitError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
