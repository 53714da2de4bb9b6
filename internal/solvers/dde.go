package solvers

import (
	"context"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// SolveDDE integrates a delay equation by the method of steps: the delayed
// terms are read from the pre-history for t <= t0 and from the linearly
// interpolated computed trajectory afterwards. Every step is saved because
// the trajectory doubles as the delay lookup table; opts.Dt should stay
// below the smallest lag.
func SolveDDE(ctx context.Context, prob deq.DDEProblem, st Stepper, opts deq.Options) (*deq.Solution, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	t0, t1 := prob.Tspan[0], prob.Tspan[1]
	estSteps := int((t1-t0)/opts.Dt) + 2
	sol := deq.NewSolution(estSteps)

	y := prob.Y0.Clone()
	t := t0
	sol.Push(t, y)

	lookup := func(at float64) deq.State {
		if at <= t0 {
			return prob.History(at)
		}
		return sol.At(at)
	}

	evals := 0
	f := func(y deq.State, p deq.Params, at float64) deq.State {
		evals++
		return prob.F(y, lookup, p, at)
	}

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
		y = st.Step(f, y, prob.Params, t, h)
		if !y.IsValid() {
			sol.RetCode = deq.Unstable
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrUnstable}
		}

		t += h
		steps++
		sol.Push(t, y)
	}

	sol.Stats = deq.Stats{Steps: steps, Evals: evals}
	return sol, nil
}
