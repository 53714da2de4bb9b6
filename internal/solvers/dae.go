package solvers

import (
	"context"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

// SolveDAE integrates M*y' = f(y, t) by implicit Euler with Newton
// iteration on G(y1) = M*(y1 - y0) - h*f(y1, t1). Zero rows of M pose
// algebraic constraints; the iteration matrix M - h*J must be regular.
func SolveDAE(ctx context.Context, prob deq.DAEProblem, opts deq.Options) (*deq.Solution, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	n := len(prob.Y0)
	massData := make([]float64, 0, n*n)
	for _, row := range prob.Mass {
		massData = append(massData, row...)
	}
	mass := mat.NewDense(n, n, massData)

	evals := 0
	f := func(y deq.State, p deq.Params, t float64) deq.State {
		evals++
		return prob.F(y, p, t)
	}

	t0, t1 := prob.Tspan[0], prob.Tspan[1]
	estSteps := int((t1-t0)/opts.Dt) + 1
	sol := deq.NewSolution(estSteps/opts.SaveEvery + 2)

	y := prob.Y0.Clone()
	t := t0
	sol.Push(t, y)

	steps := 0
	for t < t1-1e-14 {
		select {
		case <-ctx.Done():
			sol.RetCode = deq.Canceled
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, ctx.Err()
		default:
		}

		if steps >= opts.MaxSteps {
			sol.RetCode = deq.MaxSteps
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrMaxSteps}
		}

		h := math.Min(opts.Dt, t1-t)
		tNext := t + h
		y0 := y

		g := func(yk deq.State) deq.State {
			fk := f(yk, prob.Params, tNext)
			r := make(deq.State, n)
			for i := 0; i < n; i++ {
				ri := -h * fk[i]
				for j := 0; j < n; j++ {
					ri += mass.At(i, j) * (yk[j] - y0[j])
				}
				r[i] = ri
			}
			return r
		}

		jacFn := func(yk deq.State) *mat.Dense {
			jf := Jacobian(f, yk, prob.Params, tNext)
			j := mat.NewDense(n, n, nil)
			for i := 0; i < n; i++ {
				for k := 0; k < n; k++ {
					j.Set(i, k, mass.At(i, k)-h*jf.At(i, k))
				}
			}
			return j
		}

		yNew, err := newton(g, jacFn, y, 50, opts.AbsTol)
		if err != nil {
			sol.RetCode = deq.Unstable
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: err}
		}
		if !yNew.IsValid() {
			sol.RetCode = deq.Unstable
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrUnstable}
		}

		y, t = yNew, tNext
		steps++
		if steps%opts.SaveEvery == 0 || t >= t1-1e-14 {
			sol.Push(t, y)
		}
	}

	sol.Stats = deq.Stats{Steps: steps, Evals: evals}
	return sol, nil
}
