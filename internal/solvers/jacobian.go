package solvers

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

// Jacobian approximates df/dy at (y, t) by forward differences.
func Jacobian(f deq.RHS, y deq.State, p deq.Params, t float64) *mat.Dense {
	n := len(y)
	jac := mat.NewDense(n, n, nil)

	f0 := f(y, p, t)
	yp := y.Clone()

	for j := 0; j < n; j++ {
		eps := math.Sqrt(2.2e-16) * math.Max(math.Abs(y[j]), 1.0)
		yp[j] = y[j] + eps
		fj := f(yp, p, t)
		yp[j] = y[j]

		for i := 0; i < n; i++ {
			jac.Set(i, j, (fj[i]-f0[i])/eps)
		}
	}

	return jac
}
