package solvers

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/diffeq/internal/deq"
)

// EulerMaruyama is the strong order 0.5 baseline SDE scheme.
type EulerMaruyama struct{}

func NewEulerMaruyama() *EulerMaruyama {
	return &EulerMaruyama{}
}

func (em *EulerMaruyama) Step(f deq.RHS, g deq.Noise, y deq.State, p deq.Params, t, dt float64, xi []float64) deq.State {
	drift := f(y, p, t)
	diff := g(y, p, t)
	sqrtDt := math.Sqrt(dt)

	result := make(deq.State, len(y))
	for i := range y {
		result[i] = y[i] + dt*drift[i] + sqrtDt*diff[i]*xi[i]
	}
	return result
}

// Milstein adds the diagonal-noise correction term, lifting strong order to
// 1.0. The derivative of g is approximated by central differences.
type Milstein struct{}

func NewMilstein() *Milstein {
	return &Milstein{}
}

func (m *Milstein) Step(f deq.RHS, g deq.Noise, y deq.State, p deq.Params, t, dt float64, xi []float64) deq.State {
	n := len(y)
	drift := f(y, p, t)
	diff := g(y, p, t)
	sqrtDt := math.Sqrt(dt)

	result := make(deq.State, n)
	yp := y.Clone()
	for i := 0; i < n; i++ {
		eps := math.Sqrt(2.2e-16) * math.Max(math.Abs(y[i]), 1.0)
		yp[i] = y[i] + eps
		gUp := g(yp, p, t)
		yp[i] = y[i] - eps
		gDown := g(yp, p, t)
		yp[i] = y[i]
		dg := (gUp[i] - gDown[i]) / (2 * eps)

		dW := sqrtDt * xi[i]
		result[i] = y[i] + dt*drift[i] + diff[i]*dW + 0.5*diff[i]*dg*(dW*dW-dt)
	}
	return result
}

// SolveSDE integrates an SDE path with fixed step opts.Dt. The Wiener
// increments are drawn from prob.Seed, so a given seed reproduces its path.
func SolveSDE(ctx context.Context, prob deq.SDEProblem, st SDEStepper, opts deq.Options) (*deq.Solution, error) {
	if err := prob.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	seed := prob.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	t0, t1 := prob.Tspan[0], prob.Tspan[1]
	estSteps := int((t1-t0)/opts.Dt) + 1
	sol := deq.NewSolution(estSteps/opts.SaveEvery + 2)

	y := prob.Y0.Clone()
	t := t0
	sol.Push(t, y)

	evals := 0
	f := func(y deq.State, p deq.Params, t float64) deq.State {
		evals++
		return prob.F(y, p, t)
	}

	xi := make([]float64, len(y))
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
		for i := range xi {
			xi[i] = rng.NormFloat64()
		}

		y = st.Step(f, prob.G, y, prob.Params, t, h, xi)
		if !y.IsValid() {
			sol.RetCode = deq.Unstable
			sol.Stats = deq.Stats{Steps: steps, Evals: evals}
			return sol, &deq.StepError{Step: steps, Time: t, Wrapped: deq.ErrUnstable}
		}

		t += h
		steps++
		if steps%opts.SaveEvery == 0 || t >= t1-1e-14 {
			sol.Push(t, y)
		}
	}

	sol.Stats = deq.Stats{Steps: steps, Evals: evals}
	return sol, nil
}
