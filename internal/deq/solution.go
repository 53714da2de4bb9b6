package deq

import (
	"fmt"
	"sort"
)

type RetCode string

const (
	Success    RetCode = "success"
	MaxSteps   RetCode = "maxsteps"
	Unstable   RetCode = "unstable"
	Terminated RetCode = "terminated"
	Canceled   RetCode = "canceled"
)

// Stats counts solver work, mirroring what adaptive codes usually report.
type Stats struct {
	Steps    int
	Rejected int
	Evals    int
}

// Solution holds the saved trajectory plus bookkeeping. Times is strictly
// increasing; States[i] is the state at Times[i].
type Solution struct {
	Times   []float64
	States  []State
	Stats   Stats
	RetCode RetCode
}

func NewSolution(capacity int) *Solution {
	return &Solution{
		Times:   make([]float64, 0, capacity),
		States:  make([]State, 0, capacity),
		RetCode: Success,
	}
}

func (s *Solution) Push(t float64, y State) {
	s.Times = append(s.Times, t)
	s.States = append(s.States, y.Clone())
}

func (s *Solution) Len() int { return len(s.Times) }

func (s *Solution) Last() (float64, State) {
	n := len(s.Times)
	if n == 0 {
		return 0, nil
	}
	return s.Times[n-1], s.States[n-1]
}

// At interpolates the solution linearly at time t. Times outside the saved
// range clamp to the endpoints.
func (s *Solution) At(t float64) State {
	n := len(s.Times)
	if n == 0 {
		return nil
	}
	if t <= s.Times[0] {
		return s.States[0].Clone()
	}
	if t >= s.Times[n-1] {
		return s.States[n-1].Clone()
	}

	i := sort.SearchFloat64s(s.Times, t)
	t0, t1 := s.Times[i-1], s.Times[i]
	w := (t - t0) / (t1 - t0)

	y0, y1 := s.States[i-1], s.States[i]
	y := make(State, len(y0))
	for j := range y {
		y[j] = y0[j] + w*(y1[j]-y0[j])
	}
	return y
}

// SampleInterval returns the mean spacing of the saved time grid. After
// SaveEvery thinning this is the effective sample interval, not the solver
// step.
func (s *Solution) SampleInterval() float64 {
	n := len(s.Times)
	if n < 2 {
		return 0
	}
	return (s.Times[n-1] - s.Times[0]) / float64(n-1)
}

// Component extracts the time series of state component idx.
func (s *Solution) Component(idx int) ([]float64, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("deq: empty solution")
	}
	if idx < 0 || idx >= len(s.States[0]) {
		return nil, fmt.Errorf("%w: component %d of %d", ErrDimension, idx, len(s.States[0]))
	}
	out := make([]float64, s.Len())
	for i, y := range s.States {
		out[i] = y[idx]
	}
	return out, nil
}
