package problems

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// Heat discretizes the 1-D heat equation u_t = alpha*u_xx on [0,1] with
// zero Dirichlet boundaries by central finite differences on n interior
// points (method of lines). The resulting ODE system is stiff for large n.
func Heat(n int, alpha float64) deq.ODEProblem {
	if n < 3 {
		n = 3
	}
	dx := 1.0 / float64(n+1)
	p := deq.Params{"alpha": alpha, "dx": dx}

	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		c := p["alpha"] / (p["dx"] * p["dx"])
		dy := make(deq.State, len(y))
		for i := range y {
			left, right := 0.0, 0.0
			if i > 0 {
				left = y[i-1]
			}
			if i < len(y)-1 {
				right = y[i+1]
			}
			dy[i] = c * (left - 2*y[i] + right)
		}
		return dy
	}

	// Half-sine initial profile: decays as exp(-alpha*pi^2*t).
	y0 := make(deq.State, n)
	for i := range y0 {
		x := float64(i+1) * dx
		y0[i] = math.Sin(math.Pi * x)
	}

	return deq.NewODEProblem(f, y0, 0, 0.5, p)
}
