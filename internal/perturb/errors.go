package perturb

import (
	"errors"
	"fmt"
)

// Domain errors for perturbation evaluations.
var (
	// ErrInvalidParameter indicates molecule parameters that make the
	// Mie potential undefined or non-physical.
	ErrInvalidParameter = errors.New("perturb: invalid molecule parameter")

	// ErrInvalidStatePoint indicates a non-positive temperature or a
	// negative density. The whole batch fails; no partial results.
	ErrInvalidStatePoint = errors.New("perturb: invalid state point")

	// ErrNotDerived indicates an evaluator used before Derive.
	ErrNotDerived = errors.New("perturb: evaluator not derived from molecule parameters")
)

// StateError wraps a state-point failure with its batch position.
type StateError struct {
	Index   int
	Point   StatePoint
	Wrapped error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state point %d: %v", e.Index, e.Wrapped)
}

func (e *StateError) Unwrap() error {
	return e.Wrapped
}
