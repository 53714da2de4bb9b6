package problems

import "github.com/san-kum/diffeq/internal/deq"

// Robertson builds the classic stiff chemical kinetics problem. The three
// concentrations always sum to one.
func Robertson() deq.ODEProblem {
	p := deq.Params{"k1": 0.04, "k2": 3e7, "k3": 1e4}
	return deq.NewODEProblem(robertsonRHS, deq.State{1.0, 0.0, 0.0}, 0, 100, p)
}

func robertsonRHS(y deq.State, p deq.Params, _ float64) deq.State {
	return deq.State{
		-p["k1"]*y[0] + p["k3"]*y[1]*y[2],
		p["k1"]*y[0] - p["k3"]*y[1]*y[2] - p["k2"]*y[1]*y[1],
		p["k2"] * y[1] * y[1],
	}
}

// RobertsonDAE poses Robertson in mass-matrix form: the third equation is
// replaced by the algebraic conservation constraint y1 + y2 + y3 = 1, giving
// a singular mass matrix.
func RobertsonDAE() deq.DAEProblem {
	p := deq.Params{"k1": 0.04, "k2": 3e7, "k3": 1e4}
	f := func(y deq.State, p deq.Params, _ float64) deq.State {
		return deq.State{
			-p["k1"]*y[0] + p["k3"]*y[1]*y[2],
			p["k1"]*y[0] - p["k3"]*y[1]*y[2] - p["k2"]*y[1]*y[1],
			y[0] + y[1] + y[2] - 1.0,
		}
	}
	mass := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	return deq.DAEProblem{
		F:      f,
		Mass:   mass,
		Y0:     deq.State{1.0, 0.0, 0.0},
		Tspan:  [2]float64{0, 100},
		Params: p,
	}
}
