package solvers

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

func TestJacobianFiniteDifference(t *testing.T) {
	f := func(y deq.State, _ deq.Params, _ float64) deq.State {
		return deq.State{y[0] * y[0], y[0] * y[1]}
	}
	jac := Jacobian(f, deq.State{2, 3}, nil, 0)

	want := [2][2]float64{{4, 0}, {3, 2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(jac.At(i, j)-want[i][j]) > 1e-6 {
				t.Errorf("J[%d][%d]: expected %f, got %f", i, j, want[i][j], jac.At(i, j))
			}
		}
	}
}

func TestNewtonFindsRoot(t *testing.T) {
	g := func(y deq.State) deq.State {
		return deq.State{y[0]*y[0] - 4}
	}
	jacFn := func(y deq.State) *mat.Dense {
		j := mat.NewDense(1, 1, nil)
		j.Set(0, 0, 2*y[0])
		return j
	}

	root, err := newton(g, jacFn, deq.State{3}, 50, 1e-12)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(root[0]-2) > 1e-10 {
		t.Errorf("expected root 2, got %f", root[0])
	}
}

func TestNewtonSingularJacobian(t *testing.T) {
	g := func(y deq.State) deq.State { return deq.State{1} }
	jacFn := func(y deq.State) *mat.Dense {
		return mat.NewDense(1, 1, []float64{0})
	}

	_, err := newton(g, jacFn, deq.State{1}, 10, 1e-12)
	if !errors.Is(err, deq.ErrSingularMass) {
		t.Errorf("expected ErrSingularMass, got %v", err)
	}
}
