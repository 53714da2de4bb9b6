package solvers

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func TestDopri5Step(t *testing.T) {
	d := NewDopri5()
	yNew, errNorm, dtNext := d.StepAdaptive(oscillator, deq.State{1, 0}, nil, 0, 0.01, 1e-8, 1e-8)

	if math.Abs(yNew[0]-math.Cos(0.01)) > 1e-10 {
		t.Errorf("expected cos(0.01), got %f", yNew[0])
	}
	if errNorm > 1 {
		t.Errorf("small step should be accepted, errNorm=%f", errNorm)
	}
	if dtNext <= 0.01 {
		t.Errorf("accepted step should grow, dtNext=%f", dtNext)
	}
}

func TestDopri5StepRejectsCoarse(t *testing.T) {
	d := NewDopri5()
	// A huge step on the oscillator at tight tolerance has to be rejected.
	_, errNorm, dtNext := d.StepAdaptive(oscillator, deq.State{1, 0}, nil, 0, 2.0, 1e-12, 1e-12)
	if errNorm <= 1 {
		t.Errorf("expected rejection, errNorm=%f", errNorm)
	}
	if dtNext >= 2.0 {
		t.Errorf("rejected step should shrink, dtNext=%f", dtNext)
	}
}

func TestSolveODEAdaptive(t *testing.T) {
	prob := deq.NewODEProblem(oscillator, deq.State{1, 0}, 0, 10, nil)
	opts := deq.DefaultOptions()
	opts.Adaptive = true
	opts.AbsTol = 1e-8
	opts.RelTol = 1e-8

	sol, err := SolveODE(context.Background(), prob, NewDopri5(), opts)
	if err != nil {
		t.Fatal(err)
	}

	_, last := sol.Last()
	if math.Abs(last[0]-math.Cos(10)) > 1e-5 {
		t.Errorf("expected cos(10)=%f, got %f", math.Cos(10), last[0])
	}
}

func TestAdaptiveUsesFewerEvals(t *testing.T) {
	// On a smooth problem the controller should take far fewer steps than
	// a fixed fine grid for the same accuracy.
	prob := deq.NewODEProblem(decay, deq.State{1}, 0, 10, nil)

	fixed := deq.DefaultOptions()
	fixed.Dt = 1e-4
	solFixed, err := SolveODE(context.Background(), prob, NewRK4(), fixed)
	if err != nil {
		t.Fatal(err)
	}

	adaptive := deq.DefaultOptions()
	adaptive.Adaptive = true
	solAdaptive, err := SolveODE(context.Background(), prob, NewDopri5(), adaptive)
	if err != nil {
		t.Fatal(err)
	}

	if solAdaptive.Stats.Evals >= solFixed.Stats.Evals {
		t.Errorf("adaptive evals %d should beat fixed evals %d",
			solAdaptive.Stats.Evals, solFixed.Stats.Evals)
	}
}
