package deq

import (
	"math"
	"testing"
)

func TestContinuousCallbackLocalizesCrossing(t *testing.T) {
	// Height falls linearly from 1 to -1 over the step; the zero crossing
	// sits at t=0.5.
	cb := ContinuousCallback{
		Event: func(y State, _ float64) float64 { return y[0] },
		Affect: func(y State, tEvent float64) State {
			return State{0, -y[1]}
		},
	}

	y, tEvent, fired, term := cb.Apply(State{1, -2}, 0, State{-1, -2}, 1)
	if !fired {
		t.Fatal("expected callback to fire")
	}
	if term {
		t.Error("callback should not terminate")
	}
	if math.Abs(tEvent-0.5) > 1e-8 {
		t.Errorf("expected event at t=0.5, got %f", tEvent)
	}
	if y[1] != 2 {
		t.Errorf("expected reversed velocity 2, got %f", y[1])
	}
}

func TestContinuousCallbackNoCrossing(t *testing.T) {
	cb := ContinuousCallback{
		Event: func(y State, _ float64) float64 { return y[0] },
	}
	_, _, fired, _ := cb.Apply(State{1}, 0, State{2}, 1)
	if fired {
		t.Error("callback fired without a sign change")
	}
}

func TestDiscreteCallbackTerminates(t *testing.T) {
	cb := DiscreteCallback{
		Condition: func(y State, _ float64) bool { return y[0] > 10 },
		Terminate: true,
	}
	_, _, fired, term := cb.Apply(State{0}, 0, State{11}, 1)
	if !fired || !term {
		t.Error("expected fire and terminate")
	}
}
