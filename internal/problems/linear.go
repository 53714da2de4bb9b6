package problems

import "github.com/san-kum/diffeq/internal/deq"

// LinearDecay builds dy/dt = -lambda*y, the test equation with known
// solution y0*exp(-lambda*t).
func LinearDecay(lambda float64) deq.ODEProblem {
	p := deq.Params{"lambda": lambda}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{-p["lambda"] * y[0]}
	}
	return deq.NewODEProblem(f, deq.State{1.0}, 0, 1, p)
}

// HarmonicOscillator builds x'' = -x as a first-order system, state [x, v].
func HarmonicOscillator() deq.ODEProblem {
	f := func(y deq.State, _ deq.Params, _ float64) deq.State {
		return deq.State{y[1], -y[0]}
	}
	return deq.NewODEProblem(f, deq.State{1.0, 0.0}, 0, 10, nil)
}
