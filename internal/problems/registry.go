package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/diffeq/internal/deq"
)

var odeProblems = map[string]func() deq.ODEProblem{
	"lorenz":     Lorenz,
	"vanderpol":  func() deq.ODEProblem { return VanDerPol(1.0) },
	"vdp_stiff":  func() deq.ODEProblem { return VanDerPol(1000.0) },
	"lotka":      LotkaVolterra,
	"pendulum":   Pendulum,
	"oscillator": HarmonicOscillator,
	"robertson":  Robertson,
	"heat":       func() deq.ODEProblem { return Heat(50, 1.0) },
}

var sdeProblems = map[string]func(seed int64) deq.SDEProblem{
	"gbm": func(seed int64) deq.SDEProblem { return GBM(0.05, 0.2, seed) },
	"ou":  OrnsteinUhlenbeck,
}

var ddeProblems = map[string]func() deq.DDEProblem{
	"delayed_logistic": func() deq.DDEProblem { return DelayedLogistic(2.0, 1.0) },
	"mackey_glass":     func() deq.DDEProblem { return MackeyGlass(17.0) },
}

func ODE(name string) (deq.ODEProblem, error) {
	fn, ok := odeProblems[name]
	if !ok {
		return deq.ODEProblem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func SDE(name string, seed int64) (deq.SDEProblem, error) {
	fn, ok := sdeProblems[name]
	if !ok {
		return deq.SDEProblem{}, fmt.Errorf("unknown SDE problem: %s", name)
	}
	return fn(seed), nil
}

func DDE(name string) (deq.DDEProblem, error) {
	fn, ok := ddeProblems[name]
	if !ok {
		return deq.DDEProblem{}, fmt.Errorf("unknown DDE problem: %s", name)
	}
	return fn(), nil
}

func ListODE() []string {
	names := make([]string, 0, len(odeProblems))
	for name := range odeProblems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListSDE() []string {
	names := make([]string, 0, len(sdeProblems))
	for name := range sdeProblems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListDDE() []string {
	names := make([]string, 0, len(ddeProblems))
	for name := range ddeProblems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
