package solvers

import (
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
)

func benchStep(b *testing.B, st Stepper) {
	y := deq.State{1, 0}
	dt := 0.01
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = st.Step(oscillator, y, nil, 0, dt)
	}
	_ = y
}

func BenchmarkEuler(b *testing.B)         { benchStep(b, NewEuler()) }
func BenchmarkHeun(b *testing.B)          { benchStep(b, NewHeun()) }
func BenchmarkRK4(b *testing.B)           { benchStep(b, NewRK4()) }
func BenchmarkDopri5(b *testing.B)        { benchStep(b, NewDopri5()) }
func BenchmarkBackwardEuler(b *testing.B) { benchStep(b, NewBackwardEuler()) }

func BenchmarkJacobian(b *testing.B) {
	y := deq.State{1, 2, 3}
	f := func(y deq.State, _ deq.Params, _ float64) deq.State {
		return deq.State{y[1] * y[2], -y[0] * y[2], y[0] * y[1]}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Jacobian(f, y, nil, 0)
	}
}
