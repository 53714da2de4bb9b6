package deq

import "math"

// Callback hooks into the solve loop after each accepted step.
type Callback interface {
	// Apply inspects the step from (t0,y0) to (t1,y1) and returns the
	// possibly modified endpoint, the time it applies at, whether it fired,
	// and whether the solve should terminate.
	Apply(y0 State, t0 float64, y1 State, t1 float64) (State, float64, bool, bool)
}

// DiscreteCallback fires when Condition holds at the end of a step.
type DiscreteCallback struct {
	Condition func(y State, t float64) bool
	Affect    func(y State, t float64) State
	Terminate bool
}

func (cb DiscreteCallback) Apply(_ State, _ float64, y1 State, t1 float64) (State, float64, bool, bool) {
	if cb.Condition == nil || !cb.Condition(y1, t1) {
		return y1, t1, false, false
	}
	if cb.Affect != nil {
		y1 = cb.Affect(y1, t1)
	}
	return y1, t1, true, cb.Terminate
}

// ContinuousCallback fires when Event crosses zero within a step. The
// crossing is localized by bisection on the linearly interpolated state,
// then Affect is applied at the event time.
type ContinuousCallback struct {
	Event     func(y State, t float64) float64
	Affect    func(y State, t float64) State
	Terminate bool
	Tol       float64
}

func (cb ContinuousCallback) Apply(y0 State, t0 float64, y1 State, t1 float64) (State, float64, bool, bool) {
	if cb.Event == nil {
		return y1, t1, false, false
	}
	g0 := cb.Event(y0, t0)
	g1 := cb.Event(y1, t1)
	if g0 == 0 || g0*g1 > 0 {
		return y1, t1, false, false
	}

	tol := cb.Tol
	if tol <= 0 {
		tol = 1e-10
	}

	lo, hi := t0, t1
	for hi-lo > tol {
		mid := 0.5 * (lo + hi)
		ym := lerp(y0, t0, y1, t1, mid)
		gm := cb.Event(ym, mid)
		if gm == 0 {
			lo, hi = mid, mid
			break
		}
		if g0*gm < 0 {
			hi = mid
		} else {
			lo, g0 = mid, gm
		}
	}

	tEvent := 0.5 * (lo + hi)
	yEvent := lerp(y0, t0, y1, t1, tEvent)
	if cb.Affect != nil {
		yEvent = cb.Affect(yEvent, tEvent)
	}
	return yEvent, tEvent, true, cb.Terminate
}

func lerp(y0 State, t0 float64, y1 State, t1, t float64) State {
	if t1 == t0 {
		return y1.Clone()
	}
	w := (t - t0) / (t1 - t0)
	w = math.Max(0, math.Min(1, w))
	y := make(State, len(y0))
	for i := range y {
		y[i] = y0[i] + w*(y1[i]-y0[i])
	}
	return y
}
