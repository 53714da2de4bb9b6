package solvers

import (
	"fmt"
	"sort"
)

var odeSteppers = map[string]func() Stepper{
	"euler":       func() Stepper { return NewEuler() },
	"heun":        func() Stepper { return NewHeun() },
	"rk4":         func() Stepper { return NewRK4() },
	"dopri5":      func() Stepper { return NewDopri5() },
	"beuler":      func() Stepper { return NewBackwardEuler() },
	"trapezoidal": func() Stepper { return NewTrapezoidal() },
}

var sdeSteppers = map[string]func() SDEStepper{
	"em":       func() SDEStepper { return NewEulerMaruyama() },
	"milstein": func() SDEStepper { return NewMilstein() },
}

func Get(name string) (Stepper, error) {
	fn, ok := odeSteppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	return fn(), nil
}

func GetSDE(name string) (SDEStepper, error) {
	fn, ok := sdeSteppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown SDE solver: %s", name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(odeSteppers))
	for name := range odeSteppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListSDE() []string {
	names := make([]string, 0, len(sdeSteppers))
	for name := range sdeSteppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
