package solvers

import (
	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

// newton solves G(y) = 0 by damped-free Newton iteration starting from
// guess. jacFn must return dG/dy at the iterate.
func newton(g func(deq.State) deq.State, jacFn func(deq.State) *mat.Dense, guess deq.State, maxIter int, tol float64) (deq.State, error) {
	n := len(guess)
	y := guess.Clone()
	delta := mat.NewVecDense(n, nil)
	resid := mat.NewVecDense(n, nil)

	for iter := 0; iter < maxIter; iter++ {
		r := g(y)
		for i := 0; i < n; i++ {
			resid.SetVec(i, -r[i])
		}

		var lu mat.LU
		lu.Factorize(jacFn(y))
		if err := lu.SolveVecTo(delta, false, resid); err != nil {
			return nil, deq.ErrSingularMass
		}

		maxStep := 0.0
		for i := 0; i < n; i++ {
			d := delta.AtVec(i)
			y[i] += d
			if d < 0 {
				d = -d
			}
			if d > maxStep {
				maxStep = d
			}
		}

		if maxStep < tol {
			return y, nil
		}
	}

	return y, deq.ErrNoConvergence
}
