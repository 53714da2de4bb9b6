package analysis

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/solvers"
)

// LyapunovExponent estimates the largest Lyapunov exponent of an ODE by the
// twin-trajectory separation method (Benettin). A positive value indicates
// chaos.
//
// Two trajectories start a small perturbation apart; after each step the
// per-step log separation growth is accumulated and the pair is rescaled
// back to the initial distance so the separation stays in the linear regime.
func LyapunovExponent(prob deq.ODEProblem, st solvers.Stepper, dt, duration, perturbation float64) float64 {
	if len(prob.Y0) == 0 || dt <= 0 || duration <= 0 {
		return 0
	}

	x := prob.Y0.Clone()
	xp := prob.Y0.Clone()
	xp[0] += perturbation
	d0 := perturbation

	t := prob.Tspan[0]
	end := t + duration

	sumLog := 0.0
	count := 0

	for t < end {
		x = st.Step(prob.F, x, prob.Params, t, dt)
		xp = st.Step(prob.F, xp, prob.Params, t, dt)
		t += dt

		sep := 0.0
		for i := range x {
			diff := xp[i] - x[i]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)

		if sep <= 0 || d0 <= 0 {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
