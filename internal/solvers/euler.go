package solvers

import "github.com/san-kum/diffeq/internal/deq"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	dy := f(y, p, t)
	result := make(deq.State, len(y))
	for i := range y {
		result[i] = y[i] + dt*dy[i]
	}
	return result
}
