package solvers

import (
	"github.com/san-kum/diffeq/internal/deq"
	"gonum.org/v1/gonum/mat"
)

// BackwardEuler solves y1 = y0 + dt*f(y1, t+dt) by Newton iteration with a
// finite-difference Jacobian. A-stable; first order.
type BackwardEuler struct {
	MaxIter int
	Tol     float64
}

func NewBackwardEuler() *BackwardEuler {
	return &BackwardEuler{MaxIter: 25, Tol: 1e-10}
}

func (be *BackwardEuler) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	n := len(y)
	t1 := t + dt

	g := func(yk deq.State) deq.State {
		fk := f(yk, p, t1)
		r := make(deq.State, n)
		for i := 0; i < n; i++ {
			r[i] = yk[i] - y[i] - dt*fk[i]
		}
		return r
	}

	jacFn := func(yk deq.State) *mat.Dense {
		jf := Jacobian(f, yk, p, t1)
		j := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				v := -dt * jf.At(i, k)
				if i == k {
					v += 1
				}
				j.Set(i, k, v)
			}
		}
		return j
	}

	// Non-convergence leaves the last iterate; divergence to NaN is caught
	// by the validity check in the driver.
	yNew, _ := newton(g, jacFn, y, be.MaxIter, be.Tol)
	return yNew
}

// Trapezoidal is the implicit trapezoidal rule (Crank-Nicolson): A-stable,
// second order.
type Trapezoidal struct {
	MaxIter int
	Tol     float64
}

func NewTrapezoidal() *Trapezoidal {
	return &Trapezoidal{MaxIter: 25, Tol: 1e-10}
}

func (tr *Trapezoidal) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	n := len(y)
	t1 := t + dt
	f0 := f(y, p, t)
	halfDt := 0.5 * dt

	g := func(yk deq.State) deq.State {
		fk := f(yk, p, t1)
		r := make(deq.State, n)
		for i := 0; i < n; i++ {
			r[i] = yk[i] - y[i] - halfDt*(f0[i]+fk[i])
		}
		return r
	}

	jacFn := func(yk deq.State) *mat.Dense {
		jf := Jacobian(f, yk, p, t1)
		j := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				v := -halfDt * jf.At(i, k)
				if i == k {
					v += 1
				}
				j.Set(i, k, v)
			}
		}
		return j
	}

	yNew, _ := newton(g, jacFn, y, tr.MaxIter, tr.Tol)
	return yNew
}
