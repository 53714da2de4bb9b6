package solvers

import (
	"context"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// SolveODE integrates prob from Tspan[0] to Tspan[1] with the given stepper.
// Adaptive stepping is used when opts.Adaptive is set and the stepper
// supports it; otherwise opts.Dt is the fixed step. A partial Solution is
// returned alongside the error when the integration aborts.
func SolveODE(ctx context.Context, prob deq.ODEProblem, st Stepper, opts deq.Options) (*deq.Solution, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

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
	dt := opts.Dt
	sol.Push(t, y)

	adaptive, isAdaptive := st.(AdaptiveStepper)
	useAdaptive := opts.Adaptive && isAdaptive

	steps := 0
	rejected := 0

	for t < t1-1e-14 {
		select {
		case <-ctx.Done():
			sol.RetCode = deq.Canceled
			sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
			return sol, ctx.Err()
		default:
		}

		if steps >= opts.MaxSteps {
			sol.RetCode = deq.MaxSteps
			sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrMaxSteps}
		}

		h := math.Min(dt, t1-t)

		var yNew deq.State
		if useAdaptive {
			for {
				var errNorm, dtNext float64
				yNew, errNorm, dtNext = adaptive.StepAdaptive(f, y, prob.Params, t, h, opts.AbsTol, opts.RelTol)
				if errNorm <= 1 {
					dt = math.Min(dtNext, opts.MaxDt)
					break
				}
				rejected++
				h = dtNext
				if h < opts.MinDt {
					sol.RetCode = deq.Unstable
					sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
					return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrStepTooSmall}
				}
			}
		} else {
			yNew = st.Step(f, y, prob.Params, t, h)
		}

		if !yNew.IsValid() {
			sol.RetCode = deq.Unstable
			sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrUnstable}
		}

		tNew := t + h
		terminated := false
		for _, cb := range opts.Callbacks {
			yCb, tCb, fired, term := cb.Apply(y, t, yNew, tNew)
			if fired {
				yNew, tNew = yCb, tCb
			}
			if term {
				terminated = true
			}
		}

		y, t = yNew, tNew
		steps++

		if terminated {
			sol.Push(t, y)
			sol.RetCode = deq.Terminated
			sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
			return sol, nil
		}

		if steps%opts.SaveEvery == 0 || t >= t1-1e-14 {
			sol.Push(t, y)
		}
	}

	sol.Stats = deq.Stats{Steps: steps, Rejected: rejected, Evals: evals}
	return sol, nil
}
