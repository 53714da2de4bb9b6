package deq

import (
	"errors"
	"testing"
)

func TestODEProblemValidate(t *testing.T) {
	good := NewODEProblem(
		func(y State, _ Params, _ float64) State { return State{y[1], -y[0]} },
		State{1, 0}, 0, 1, nil,
	)
	if err := good.Validate(); err != nil {
		t.Errorf("expected valid problem, got %v", err)
	}
}

func TestODEProblemDimensionMismatch(t *testing.T) {
	bad := NewODEProblem(
		func(y State, _ Params, _ float64) State { return State{y[0]} },
		State{1, 0}, 0, 1, nil,
	)
	err := bad.Validate()
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestODEProblemBadTspan(t *testing.T) {
	bad := NewODEProblem(
		func(y State, _ Params, _ float64) State { return y.Clone() },
		State{1}, 2, 1, nil,
	)
	if err := bad.Validate(); err == nil {
		t.Error("expected error for reversed tspan")
	}
}

func TestDAEProblemMassShape(t *testing.T) {
	prob := DAEProblem{
		F:     func(y State, _ Params, _ float64) State { return y.Clone() },
		Mass:  [][]float64{{1, 0}},
		Y0:    State{1, 2},
		Tspan: [2]float64{0, 1},
	}
	if !errors.Is(prob.Validate(), ErrDimension) {
		t.Error("expected ErrDimension for ragged mass matrix")
	}
}

func TestDDEProblemNegativeLag(t *testing.T) {
	prob := DDEProblem{
		F:       func(y State, _ HistoryFunc, _ Params, _ float64) State { return y.Clone() },
		Lags:    []float64{-1},
		History: func(float64) State { return State{1} },
		Y0:      State{1},
		Tspan:   [2]float64{0, 1},
	}
	if err := prob.Validate(); err == nil {
		t.Error("expected error for negative lag")
	}
}
