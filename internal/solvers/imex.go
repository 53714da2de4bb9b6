package solvers

import (
	"context"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

// SolveSplit integrates a stiff/non-stiff splitting with IMEX Euler:
// the non-stiff part is taken explicitly at (y0, t), the stiff part
// implicitly at (y1, t+h).
func SolveSplit(ctx context.Context, prob deq.SplitProblem, opts deq.Options) (*deq.Solution, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	n := len(prob.Y0)

	evals := 0
	stiff := func(y deq.State, p deq.Params, t float64) deq.State {
		evals++
		return prob.Stiff(y, p, t)
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

		explicit := prob.NonStiff(y, prob.Params, t)
		evals++
		base := make(deq.State, n)
		for i := 0; i < n; i++ {
			base[i] = y[i] + h*explicit[i]
		}

		g := func(yk deq.State) deq.State {
			fk := stiff(yk, prob.Params, tNext)
			r := make(deq.State, n)
			for i := 0; i < n; i++ {
				r[i] = yk[i] - base[i] - h*fk[i]
			}
			return r
		}

		jacFn := func(yk deq.State) *mat.Dense {
			jf := Jacobian(stiff, yk, prob.Params, tNext)
			j := mat.NewDense(n, n, nil)
			for i := 0; i < n; i++ {
				for k := 0; k < n; k++ {
					v := -h * jf.At(i, k)
					if i == k {
						v += 1
					}
					j.Set(i, k, v)
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
