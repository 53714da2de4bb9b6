package problems

import "github.com/san-kum/diffeq/internal/deq"

// VanDerPol builds the Van der Pol oscillator:
//
//	dx/dt = y
//	dy/dt = mu(1 - x^2)y - x
//
// mu is the stiffness dial: 1 gives the classic limit cycle, 1e3 and up
// needs an implicit solver.
func VanDerPol(mu float64) deq.ODEProblem {
	p := deq.Params{"mu": mu}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		x, v := y[0], y[1]
		return deq.State{v, p["mu"]*(1-x*x)*v - x}
	}
	tEnd := 20.0
	if mu > 100 {
		tEnd = 2 * mu
	}
	return deq.NewODEProblem(f, deq.State{2.0, 0.0}, 0, tEnd, p)
}
