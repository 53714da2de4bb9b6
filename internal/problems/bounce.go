package problems

import "github.com/san-kum/diffeq/internal/deq"

// BouncingBall builds free fall with state [height, velocity] plus the
// impact callback: when height crosses zero the velocity reverses scaled by
// the restitution coefficient.
func BouncingBall(restitution float64) (deq.ODEProblem, deq.ContinuousCallback) {
	p := deq.Params{"g": 9.81, "restitution": restitution}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{y[1], -p["g"]}
	}
	prob := deq.NewODEProblem(f, deq.State{10.0, 0.0}, 0, 8, p)

	cb := deq.ContinuousCallback{
		Event: func(y deq.State, _ float64) float64 { return y[0] },
		Affect: func(y deq.State, _ float64) deq.State {
			return deq.State{0, -restitution * y[1]}
		},
	}
	return prob, cb
}
