package solvers

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func TestSolveODEMaxSteps(t *testing.T) {
	prob := deq.NewODEProblem(decay, deq.State{1}, 0, 100, nil)
	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.MaxSteps = 50

	sol, err := SolveODE(context.Background(), prob, NewEuler(), opts)
	if !errors.Is(err, deq.ErrMaxSteps) {
		t.Errorf("expected ErrMaxSteps, got %v", err)
	}
	if sol.RetCode != deq.MaxSteps {
		t.Errorf("expected MaxSteps ret code, got %v", sol.RetCode)
	}
	if sol.Stats.Steps != 50 {
		t.Errorf("expected 50 steps before abort, got %d", sol.Stats.Steps)
	}
}

func TestSolveODEUnstableDetected(t *testing.T) {
	blowup := func(y deq.State, _ deq.Params, _ float64) deq.State {
		return deq.State{y[0] * y[0]}
	}
	// y' = y^2 from y(0)=1 blows up at t=1.
	prob := deq.NewODEProblem(blowup, deq.State{1}, 0, 2, nil)
	opts := deq.DefaultOptions()
	opts.Dt = 0.01

	sol, err := SolveODE(context.Background(), prob, NewEuler(), opts)
	if !errors.Is(err, deq.ErrUnstable) {
		t.Errorf("expected ErrUnstable, got %v", err)
	}
	if sol.RetCode != deq.Unstable {
		t.Errorf("expected Unstable ret code, got %v", sol.RetCode)
	}
}

func TestSolveODECanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prob := deq.NewODEProblem(decay, deq.State{1}, 0, 1, nil)
	sol, err := SolveODE(ctx, prob, NewEuler(), deq.DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if sol.RetCode != deq.Canceled {
		t.Errorf("expected Canceled ret code, got %v", sol.RetCode)
	}
}

func TestSolveODETerminateCallback(t *testing.T) {
	prob := deq.NewODEProblem(
		func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{1}
		},
		deq.State{0}, 0, 10, nil,
	)
	opts := deq.DefaultOptions()
	opts.Dt = 0.01
	opts.Callbacks = []deq.Callback{
		deq.DiscreteCallback{
			Condition: func(y deq.State, _ float64) bool { return y[0] >= 1 },
			Terminate: true,
		},
	}

	sol, err := SolveODE(context.Background(), prob, NewEuler(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if sol.RetCode != deq.Terminated {
		t.Errorf("expected Terminated, got %v", sol.RetCode)
	}
	tEnd, _ := sol.Last()
	if math.Abs(tEnd-1) > 0.02 {
		t.Errorf("expected stop near t=1, got %f", tEnd)
	}
}

func TestSolveODEBounceCallback(t *testing.T) {
	// Free fall with a reflecting floor at zero height.
	fall := func(y deq.State, _ deq.Params, _ float64) deq.State {
		return deq.State{y[1], -9.81}
	}
	prob := deq.NewODEProblem(fall, deq.State{1, 0}, 0, 2, nil)
	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.Callbacks = []deq.Callback{
		deq.ContinuousCallback{
			Event: func(y deq.State, _ float64) float64 { return y[0] },
			Affect: func(y deq.State, _ float64) deq.State {
				return deq.State{0, -0.9 * y[1]}
			},
		},
	}

	sol, err := SolveODE(context.Background(), prob, NewRK4(), opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, y := range sol.States {
		if y[0] < -1e-6 {
			t.Fatalf("ball fell through the floor at point %d: %e", i, y[0])
		}
	}
}

func TestSolveODESaveEvery(t *testing.T) {
	prob := deq.NewODEProblem(decay, deq.State{1}, 0, 1, nil)
	opts := deq.DefaultOptions()
	opts.Dt = 0.01
	opts.SaveEvery = 10

	sol, err := SolveODE(context.Background(), prob, NewEuler(), opts)
	if err != nil {
		t.Fatal(err)
	}
	// initial point + every 10th step + final point
	if sol.Len() > 13 {
		t.Errorf("expected thinned output, got %d points", sol.Len())
	}
	tEnd, _ := sol.Last()
	if math.Abs(tEnd-1) > 1e-9 {
		t.Errorf("final point must be saved, last t=%f", tEnd)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"euler", "heun", "rk4", "dopri5", "beuler", "trapezoidal"} {
		if _, err := Get(name); err != nil {
			t.Errorf("expected solver %q registered: %v", name, err)
		}
	}
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown solver")
	}

	names := List()
	if len(names) != 6 {
		t.Errorf("expected 6 solvers, got %d", len(names))
	}

	if _, err := GetSDE("em"); err != nil {
		t.Errorf("expected em registered: %v", err)
	}
	if got := len(ListSDE()); got != 2 {
		t.Errorf("expected 2 SDE solvers, got %d", got)
	}
}
