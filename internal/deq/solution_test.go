package deq

import (
	"math"
	"testing"
)

func TestSolutionAt(t *testing.T) {
	sol := NewSolution(4)
	sol.Push(0, State{0, 10})
	sol.Push(1, State{1, 20})
	sol.Push(2, State{4, 30})

	y := sol.At(0.5)
	if math.Abs(y[0]-0.5) > 1e-12 || math.Abs(y[1]-15) > 1e-12 {
		t.Errorf("expected [0.5 15], got %v", y)
	}

	y = sol.At(1.5)
	if math.Abs(y[0]-2.5) > 1e-12 {
		t.Errorf("expected 2.5, got %f", y[0])
	}
}

func TestSolutionAtClamps(t *testing.T) {
	sol := NewSolution(2)
	sol.Push(1, State{5})
	sol.Push(2, State{7})

	if y := sol.At(0); y[0] != 5 {
		t.Errorf("expected clamp to first state, got %f", y[0])
	}
	if y := sol.At(10); y[0] != 7 {
		t.Errorf("expected clamp to last state, got %f", y[0])
	}
}

func TestSolutionSampleInterval(t *testing.T) {
	// A grid thinned to every 10th step of dt=0.01 samples at 0.1.
	sol := NewSolution(4)
	for i := 0; i <= 3; i++ {
		sol.Push(float64(i)*0.1, State{0})
	}
	if math.Abs(sol.SampleInterval()-0.1) > 1e-12 {
		t.Errorf("expected interval 0.1, got %f", sol.SampleInterval())
	}

	empty := NewSolution(0)
	if empty.SampleInterval() != 0 {
		t.Errorf("expected 0 for empty solution, got %f", empty.SampleInterval())
	}
}

func TestSolutionComponent(t *testing.T) {
	sol := NewSolution(2)
	sol.Push(0, State{1, 2})
	sol.Push(1, State{3, 4})

	data, err := sol.Component(1)
	if err != nil {
		t.Fatal(err)
	}
	if data[0] != 2 || data[1] != 4 {
		t.Errorf("expected [2 4], got %v", data)
	}

	if _, err := sol.Component(5); err == nil {
		t.Error("expected error for out-of-range component")
	}
}

func TestStateHelpers(t *testing.T) {
	s := State{3, 4}
	if math.Abs(s.Norm()-5) > 1e-12 {
		t.Errorf("expected norm 5, got %f", s.Norm())
	}

	c := s.Clone()
	c[0] = 99
	if s[0] != 3 {
		t.Error("clone should not alias")
	}

	if !(State{1, 2}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{math.NaN()}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{math.Inf(1)}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}
