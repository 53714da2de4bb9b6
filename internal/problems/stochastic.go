package problems

import "github.com/san-kum/diffeq/internal/deq"

// GBM builds geometric Brownian motion dy = mu*y dt + sigma*y dW.
// E[y(t)] = y0*exp(mu*t).
func GBM(mu, sigma float64, seed int64) deq.SDEProblem {
	p := deq.Params{"mu": mu, "sigma": sigma}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{p["mu"] * y[0]}
	}
	g := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{p["sigma"] * y[0]}
	}
	return deq.SDEProblem{
		F:      f,
		G:      g,
		Y0:     deq.State{1.0},
		Tspan:  [2]float64{0, 1},
		Params: p,
		Seed:   seed,
	}
}

// OrnsteinUhlenbeck builds the mean-reverting process
// dy = theta*(mu - y) dt + sigma dW.
func OrnsteinUhlenbeck(seed int64) deq.SDEProblem {
	p := deq.Params{"theta": 1.0, "mu": 0.0, "sigma": 0.3}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{p["theta"] * (p["mu"] - y[0])}
	}
	g := func(_ deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{p["sigma"]}
	}
	return deq.SDEProblem{
		F:      f,
		G:      g,
		Y0:     deq.State{1.0},
		Tspan:  [2]float64{0, 5},
		Params: p,
		Seed:   seed,
	}
}
