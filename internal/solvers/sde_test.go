package solvers

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func zeroNoise(y deq.State, _ deq.Params, _ float64) deq.State {
	return make(deq.State, len(y))
}

func TestEulerMaruyamaZeroNoise(t *testing.T) {
	// With g = 0 the scheme must collapse to explicit Euler on the drift.
	prob := deq.SDEProblem{
		F:     decay,
		G:     zeroNoise,
		Y0:    deq.State{1},
		Tspan: [2]float64{0, 1},
		Seed:  1,
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.001

	sol, err := SolveSDE(context.Background(), prob, NewEulerMaruyama(), opts)
	if err != nil {
		t.Fatal(err)
	}

	_, last := sol.Last()
	if math.Abs(last[0]-math.Exp(-1)) > 1e-3 {
		t.Errorf("expected exp(-1), got %f", last[0])
	}
}

func TestSDESeedReproducible(t *testing.T) {
	prob := deq.SDEProblem{
		F: func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{0.05 * y[0]}
		},
		G: func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{0.2 * y[0]}
		},
		Y0:    deq.State{1},
		Tspan: [2]float64{0, 1},
		Seed:  42,
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.01

	a, err := SolveSDE(context.Background(), prob, NewEulerMaruyama(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SolveSDE(context.Background(), prob, NewEulerMaruyama(), opts)
	if err != nil {
		t.Fatal(err)
	}

	_, ya := a.Last()
	_, yb := b.Last()
	if ya[0] != yb[0] {
		t.Errorf("same seed gave different paths: %f vs %f", ya[0], yb[0])
	}
}

func TestSDESeedsDiffer(t *testing.T) {
	base := deq.SDEProblem{
		F: func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{0}
		},
		G: func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{1}
		},
		Y0:    deq.State{0},
		Tspan: [2]float64{0, 1},
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.01

	base.Seed = 1
	a, err := SolveSDE(context.Background(), base, NewEulerMaruyama(), opts)
	if err != nil {
		t.Fatal(err)
	}
	base.Seed = 2
	b, err := SolveSDE(context.Background(), base, NewEulerMaruyama(), opts)
	if err != nil {
		t.Fatal(err)
	}

	_, ya := a.Last()
	_, yb := b.Last()
	if ya[0] == yb[0] {
		t.Error("different seeds should give different Wiener paths")
	}
}

func TestMilsteinZeroNoiseMatchesDrift(t *testing.T) {
	prob := deq.SDEProblem{
		F:     decay,
		G:     zeroNoise,
		Y0:    deq.State{1},
		Tspan: [2]float64{0, 1},
		Seed:  7,
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.001

	sol, err := SolveSDE(context.Background(), prob, NewMilstein(), opts)
	if err != nil {
		t.Fatal(err)
	}
	_, last := sol.Last()
	if math.Abs(last[0]-math.Exp(-1)) > 1e-3 {
		t.Errorf("expected exp(-1), got %f", last[0])
	}
}
