package solvers

import "github.com/san-kum/diffeq/internal/deq"

type RK4 struct {
	k1, k2, k3, k4 deq.State
	scratch        deq.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(deq.State, n)
		r.k2 = make(deq.State, n)
		r.k3 = make(deq.State, n)
		r.k4 = make(deq.State, n)
		r.scratch = make(deq.State, n)
	}
}

func (r *RK4) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	n := len(y)
	r.ensureScratch(n)

	k1 := f(y, p, t)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k1[i]
	}
	k2 := f(r.scratch, p, t+dt*0.5)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*0.5*r.k2[i]
	}
	k3 := f(r.scratch, p, t+dt*0.5)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = y[i] + dt*r.k3[i]
	}
	k4 := f(r.scratch, p, t+dt)
	copy(r.k4, k4)

	result := make(deq.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		result[i] = y[i] + dt6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
