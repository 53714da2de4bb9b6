package problems

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// Pendulum builds a damped pendulum, state [theta, omega].
func Pendulum() deq.ODEProblem {
	p := deq.Params{"mass": 1.0, "length": 1.0, "damping": 0.1, "gravity": 9.81}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		theta, omega := y[0], y[1]
		ml2 := p["mass"] * p["length"] * p["length"]
		alpha := (-p["damping"]*omega - p["mass"]*p["gravity"]*p["length"]*math.Sin(theta)) / ml2
		return deq.State{omega, alpha}
	}
	return deq.NewODEProblem(f, deq.State{0.5, 0.0}, 0, 10, p)
}

// PendulumEnergy returns total mechanical energy for a pendulum state,
// useful for drift checks against conservative variants.
func PendulumEnergy(p deq.Params, y deq.State) float64 {
	theta, omega := y[0], y[1]
	ke := 0.5 * p["mass"] * p["length"] * p["length"] * omega * omega
	pe := p["mass"] * p["gravity"] * p["length"] * (1 - math.Cos(theta))
	return ke + pe
}
