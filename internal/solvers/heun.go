package solvers

import "github.com/san-kum/diffeq/internal/deq"

// Heun is the explicit trapezoidal rule (second order).
type Heun struct {
	scratch deq.State
}

func NewHeun() *Heun {
	return &Heun{}
}

func (h *Heun) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	n := len(y)
	if len(h.scratch) != n {
		h.scratch = make(deq.State, n)
	}

	k1 := f(y, p, t)
	for i := 0; i < n; i++ {
		h.scratch[i] = y[i] + dt*k1[i]
	}
	k2 := f(h.scratch, p, t+dt)

	result := make(deq.State, n)
	halfDt := 0.5 * dt
	for i := 0; i < n; i++ {
		result[i] = y[i] + halfDt*(k1[i]+k2[i])
	}
	return result
}
