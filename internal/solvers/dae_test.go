package solvers

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func TestSolveDAEIdentityMassMatchesBackwardEuler(t *testing.T) {
	// With M = I the DAE integrator is plain implicit Euler.
	prob := deq.DAEProblem{
		F:     decay,
		Mass:  [][]float64{{1}},
		Y0:    deq.State{1},
		Tspan: [2]float64{0, 1},
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.1
	opts.AbsTol = 1e-12

	sol, err := SolveDAE(context.Background(), prob, opts)
	if err != nil {
		t.Fatal(err)
	}

	// 10 steps of y -> y/(1+dt)
	expected := math.Pow(1.1, -10)
	_, last := sol.Last()
	if math.Abs(last[0]-expected) > 1e-8 {
		t.Errorf("expected %f, got %f", expected, last[0])
	}
}

func TestSolveDAEAlgebraicConstraint(t *testing.T) {
	// y0' = -y0 with the constraint 0 = y0 + y1, so y1 tracks -y0.
	prob := deq.DAEProblem{
		F: func(y deq.State, _ deq.Params, _ float64) deq.State {
			return deq.State{-y[0], y[0] + y[1]}
		},
		Mass:  [][]float64{{1, 0}, {0, 0}},
		Y0:    deq.State{1, -1},
		Tspan: [2]float64{0, 2},
	}
	opts := deq.DefaultOptions()
	opts.Dt = 0.01
	opts.AbsTol = 1e-12

	sol, err := SolveDAE(context.Background(), prob, opts)
	if err != nil {
		t.Fatal(err)
	}

	for i, y := range sol.States {
		if math.Abs(y[0]+y[1]) > 1e-8 {
			t.Fatalf("constraint violated at point %d: %e", i, y[0]+y[1])
		}
	}
	_, last := sol.Last()
	if math.Abs(last[0]-math.Exp(-2)) > 1e-2 {
		t.Errorf("expected exp(-2)=%f, got %f", math.Exp(-2), last[0])
	}
}

func TestSolveDAERejectsRaggedMass(t *testing.T) {
	prob := deq.DAEProblem{
		F:     decay,
		Mass:  [][]float64{{1, 0}},
		Y0:    deq.State{1},
		Tspan: [2]float64{0, 1},
	}
	if _, err := SolveDAE(context.Background(), prob, deq.DefaultOptions()); err == nil {
		t.Error("expected validation error for mismatched mass matrix")
	}
}
