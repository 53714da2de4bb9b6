package problems

import "github.com/san-kum/diffeq/internal/deq"

// Lorenz builds the Lorenz attractor with the classic chaotic parameters.
func Lorenz() deq.ODEProblem {
	p := deq.Params{"sigma": 10.0, "rho": 28.0, "beta": 8.0 / 3.0}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{
			p["sigma"] * (y[1] - y[0]),
			y[0]*(p["rho"]-y[2]) - y[1],
			y[0]*y[1] - p["beta"]*y[2],
		}
	}
	return deq.NewODEProblem(f, deq.State{1.0, 1.0, 1.0}, 0, 40, p)
}
