package solvers

import "github.com/san-kum/diffeq/internal/deq"

// Stepper advances an ODE state by one step of size dt.
type Stepper interface {
	Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State
}

// AdaptiveStepper additionally produces an error estimate. StepAdaptive
// returns the candidate state, the scaled error norm (accept when <= 1) and
// the suggested next step size.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(f deq.RHS, y deq.State, p deq.Params, t, dt, atol, rtol float64) (deq.State, float64, float64)
}

// SDEStepper advances an SDE state by one step; xi holds one standard normal
// draw per state component.
type SDEStepper interface {
	Step(f deq.RHS, g deq.Noise, y deq.State, p deq.Params, t, dt float64, xi []float64) deq.State
}
