package deq

import (
	"errors"
	"fmt"
)

// Domain errors for solve operations.
var (
	// ErrDimension indicates mismatched state/RHS/mass dimensions.
	ErrDimension = errors.New("deq: dimension mismatch")

	// ErrUnstable indicates the integration produced NaN or Inf.
	ErrUnstable = errors.New("deq: solution diverged (NaN or Inf detected)")

	// ErrMaxSteps indicates the step budget ran out before reaching tspan end.
	ErrMaxSteps = errors.New("deq: maximum number of steps exceeded")

	// ErrStepTooSmall indicates the adaptive step fell below the minimum.
	ErrStepTooSmall = errors.New("deq: adaptive step below minimum")

	// ErrSingularMass indicates the DAE iteration matrix could not be factorized.
	ErrSingularMass = errors.New("deq: singular iteration matrix")

	// ErrNoConvergence indicates the Newton iteration failed to converge.
	ErrNoConvergence = errors.New("deq: Newton iteration did not converge")
)

// StepError wraps a domain error with the step and time it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
