package problems

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// DelayedLogistic builds the Hutchinson equation
// y'(t) = r*y(t)*(1 - y(t - tau)), constant history 0.1.
// For r*tau > pi/2 the equilibrium turns into a limit cycle.
func DelayedLogistic(r, tau float64) deq.DDEProblem {
	p := deq.Params{"r": r, "tau": tau}
	f := func(y deq.State, h deq.HistoryFunc, p deq.Params, t float64) deq.State {
		lagged := h(t - p["tau"])
		return deq.State{p["r"] * y[0] * (1 - lagged[0])}
	}
	return deq.DDEProblem{
		F:       f,
		Lags:    []float64{tau},
		History: func(_ float64) deq.State { return deq.State{0.1} },
		Y0:      deq.State{0.1},
		Tspan:   [2]float64{0, 40},
		Params:  p,
	}
}

// MackeyGlass builds the Mackey-Glass equation, chaotic for tau around 17.
func MackeyGlass(tau float64) deq.DDEProblem {
	p := deq.Params{"beta": 0.2, "gamma": 0.1, "n": 10.0, "tau": tau}
	f := func(y deq.State, h deq.HistoryFunc, p deq.Params, t float64) deq.State {
		lagged := h(t - p["tau"])[0]
		return deq.State{
			p["beta"]*lagged/(1+math.Pow(lagged, p["n"])) - p["gamma"]*y[0],
		}
	}
	return deq.DDEProblem{
		F:       f,
		Lags:    []float64{tau},
		History: func(_ float64) deq.State { return deq.State{0.5} },
		Y0:      deq.State{0.5},
		Tspan:   [2]float64{0, 200},
		Params:  p,
	}
}
