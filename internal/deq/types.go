package deq

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Params holds named equation parameters, e.g. {"sigma": 10, "rho": 28}.
type Params map[string]float64

func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// RHS is the right-hand side of dy/dt = f(y, p, t).
type RHS func(y State, p Params, t float64) State

// Noise is the diffusion term g in dy = f dt + g dW (diagonal noise:
// component i of the returned state multiplies an independent Wiener
// increment).
type Noise func(y State, p Params, t float64) State

// HistoryFunc returns the solution at a past time, used by delay equations
// both for the pre-history t <= t0 and for lookups into the computed
// trajectory.
type HistoryFunc func(t float64) State

// DelayRHS is the right-hand side of a delay equation; past states are
// reached through h, e.g. h(t - tau).
type DelayRHS func(y State, h HistoryFunc, p Params, t float64) State
