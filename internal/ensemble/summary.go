package ensemble

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/diffeq/internal/deq"
)

// Summary holds per-time statistics of a component across an ensemble.
type Summary struct {
	Times []float64
	Mean  []float64
	Std   []float64
}

// Summarize computes mean and standard deviation of state component idx at
// the time grid of the first solution. All solutions must share that grid,
// which fixed-step ensembles do by construction.
func Summarize(sols []*deq.Solution, idx int) (*Summary, error) {
	if len(sols) == 0 {
		return nil, fmt.Errorf("ensemble: no solutions to summarize")
	}

	times := sols[0].Times
	n := len(times)
	for k, s := range sols {
		if s.Len() != n {
			return nil, fmt.Errorf("ensemble: solution %d has %d samples, want %d", k, s.Len(), n)
		}
	}

	sum := &Summary{
		Times: times,
		Mean:  make([]float64, n),
		Std:   make([]float64, n),
	}

	m := float64(len(sols))
	for i := 0; i < n; i++ {
		mean := 0.0
		for _, s := range sols {
			mean += s.States[i][idx]
		}
		mean /= m

		variance := 0.0
		for _, s := range sols {
			d := s.States[i][idx] - mean
			variance += d * d
		}
		if len(sols) > 1 {
			variance /= m - 1
		}

		sum.Mean[i] = mean
		sum.Std[i] = math.Sqrt(variance)
	}

	return sum, nil
}

// Quantile returns the q-quantile (0..1) trajectory of component idx.
func Quantile(sols []*deq.Solution, idx int, q float64) ([]float64, error) {
	if len(sols) == 0 {
		return nil, fmt.Errorf("ensemble: no solutions")
	}
	n := sols[0].Len()
	for k, s := range sols {
		if s.Len() != n {
			return nil, fmt.Errorf("ensemble: solution %d has %d samples, want %d", k, s.Len(), n)
		}
	}
	out := make([]float64, n)
	vals := make([]float64, len(sols))

	for i := 0; i < n; i++ {
		for k, s := range sols {
			vals[k] = s.States[i][idx]
		}
		sort.Float64s(vals)
		pos := q * float64(len(vals)-1)
		lo := int(pos)
		if lo >= len(vals)-1 {
			out[i] = vals[len(vals)-1]
		} else {
			w := pos - float64(lo)
			out[i] = vals[lo]*(1-w) + vals[lo+1]*w
		}
	}
	return out, nil
}
