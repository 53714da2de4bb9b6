package problems

import "github.com/san-kum/diffeq/internal/deq"

// Brusselator builds the autocatalytic oscillator split into its linear
// (stiff for large B) and nonlinear parts, for IMEX integration.
func Brusselator() deq.SplitProblem {
	p := deq.Params{"a": 1.0, "b": 3.0}
	stiff := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{
			-(p["b"] + 1) * y[0],
			p["b"] * y[0],
		}
	}
	nonstiff := func(y deq.State, p deq.Params, _ float64) deq.State {
		xxy := y[0] * y[0] * y[1]
		return deq.State{
			p["a"] + xxy,
			-xxy,
		}
	}
	return deq.SplitProblem{
		Stiff:    stiff,
		NonStiff: nonstiff,
		Y0:       deq.State{1.0, 1.0},
		Tspan:    [2]float64{0, 20},
		Params:   p,
	}
}
