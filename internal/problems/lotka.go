package problems

import "github.com/san-kum/diffeq/internal/deq"

// LotkaVolterra builds the predator-prey system with state [prey, predator].
func LotkaVolterra() deq.ODEProblem {
	p := deq.Params{"alpha": 1.5, "beta": 1.0, "gamma": 3.0, "delta": 1.0}
	return deq.NewODEProblem(lotkaRHS, deq.State{1.0, 1.0}, 0, 10, p)
}

func lotkaRHS(y deq.State, p deq.Params, _ float64) deq.State {
	prey, pred := y[0], y[1]
	return deq.State{
		p["alpha"]*prey - p["beta"]*prey*pred,
		p["delta"]*prey*pred - p["gamma"]*pred,
	}
}
