package deq

import "fmt"

// ODEProblem bundles everything a solver needs for dy/dt = f(y, p, t):
// the right-hand side, initial state, time span and parameters.
type ODEProblem struct {
	F      RHS
	Y0     State
	Tspan  [2]float64
	Params Params
}

func NewODEProblem(f RHS, y0 State, t0, t1 float64, p Params) ODEProblem {
	return ODEProblem{F: f, Y0: y0.Clone(), Tspan: [2]float64{t0, t1}, Params: p}
}

func (pr ODEProblem) Validate() error {
	if pr.F == nil {
		return fmt.Errorf("deq: nil RHS")
	}
	if err := checkTspan(pr.Tspan); err != nil {
		return err
	}
	return checkDim(len(pr.F(pr.Y0, pr.Params, pr.Tspan[0])), len(pr.Y0))
}

// SDEProblem describes dy = f dt + g dW with diagonal noise. Seed fixes the
// Wiener increments; zero means seed from the clock.
type SDEProblem struct {
	F      RHS
	G      Noise
	Y0     State
	Tspan  [2]float64
	Params Params
	Seed   int64
}

func (pr SDEProblem) Validate() error {
	if pr.F == nil || pr.G == nil {
		return fmt.Errorf("deq: SDE requires both drift and diffusion")
	}
	if err := checkTspan(pr.Tspan); err != nil {
		return err
	}
	if err := checkDim(len(pr.F(pr.Y0, pr.Params, pr.Tspan[0])), len(pr.Y0)); err != nil {
		return err
	}
	return checkDim(len(pr.G(pr.Y0, pr.Params, pr.Tspan[0])), len(pr.Y0))
}

// DDEProblem describes a delay equation. History supplies the solution for
// t <= Tspan[0]; Lags lists the constant delays the RHS reaches back by.
type DDEProblem struct {
	F       DelayRHS
	Lags    []float64
	History HistoryFunc
	Y0      State
	Tspan   [2]float64
	Params  Params
}

func (pr DDEProblem) Validate() error {
	if pr.F == nil || pr.History == nil {
		return fmt.Errorf("deq: DDE requires RHS and history")
	}
	for _, lag := range pr.Lags {
		if lag <= 0 {
			return fmt.Errorf("deq: lag must be positive, got %f", lag)
		}
	}
	if err := checkTspan(pr.Tspan); err != nil {
		return err
	}
	return checkDim(len(pr.History(pr.Tspan[0])), len(pr.Y0))
}

// DAEProblem poses M * dy/dt = f(y, p, t) in mass-matrix form. Rows of M
// that are all zero turn the corresponding equations into algebraic
// constraints 0 = f_i.
type DAEProblem struct {
	F      RHS
	Mass   [][]float64
	Y0     State
	Tspan  [2]float64
	Params Params
}

func (pr DAEProblem) Validate() error {
	if pr.F == nil {
		return fmt.Errorf("deq: nil RHS")
	}
	if err := checkTspan(pr.Tspan); err != nil {
		return err
	}
	n := len(pr.Y0)
	if len(pr.Mass) != n {
		return fmt.Errorf("%w: mass matrix has %d rows for %d states", ErrDimension, len(pr.Mass), n)
	}
	for i, row := range pr.Mass {
		if len(row) != n {
			return fmt.Errorf("%w: mass matrix row %d has %d columns for %d states", ErrDimension, i, len(row), n)
		}
	}
	return checkDim(len(pr.F(pr.Y0, pr.Params, pr.Tspan[0])), n)
}

// SplitProblem splits the RHS into a stiff part handled implicitly and a
// non-stiff part handled explicitly: dy/dt = stiff(y) + nonstiff(y).
type SplitProblem struct {
	Stiff    RHS
	NonStiff RHS
	Y0       State
	Tspan    [2]float64
	Params   Params
}

func (pr SplitProblem) Validate() error {
	if pr.Stiff == nil || pr.NonStiff == nil {
		return fmt.Errorf("deq: split problem requires both parts")
	}
	if err := checkTspan(pr.Tspan); err != nil {
		return err
	}
	if err := checkDim(len(pr.Stiff(pr.Y0, pr.Params, pr.Tspan[0])), len(pr.Y0)); err != nil {
		return err
	}
	return checkDim(len(pr.NonStiff(pr.Y0, pr.Params, pr.Tspan[0])), len(pr.Y0))
}

func checkTspan(tspan [2]float64) error {
	if tspan[1] <= tspan[0] {
		return fmt.Errorf("deq: tspan end %f not after start %f", tspan[1], tspan[0])
	}
	return nil
}

func checkDim(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: RHS returned %d components for %d states", ErrDimension, got, want)
	}
	return nil
}
