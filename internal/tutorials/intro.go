package tutorials

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
	"github.com/san-kum/diffeq/internal/viz"
)

func init() {
	register(Tutorial{
		Name:    "intro_ode",
		Summary: "define an ODE problem, solve it, inspect the result",
		Run:     runIntroODE,
	})
	register(Tutorial{
		Name:    "choosing_solvers",
		Summary: "accuracy and cost of explicit solvers on a known solution",
		Run:     runChoosingSolvers,
	})
}

func runIntroODE(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "every solve follows the same three moves: build a problem")
	fmt.Fprintln(w, "(RHS + initial state + time span + parameters), hand it to a")
	fmt.Fprintln(w, "solver, then read the returned Solution.")
	fmt.Fprintln(w)

	prob := problems.LotkaVolterra()
	opts := deq.DefaultOptions()
	opts.Adaptive = true

	sol, err := solvers.SolveODE(ctx, prob, solvers.NewDopri5(), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "lotka-volterra on [%.0f, %.0f], dopri5 adaptive\n", prob.Tspan[0], prob.Tspan[1])
	fmt.Fprintf(w, "steps: %d  rejected: %d  rhs evals: %d\n\n", sol.Stats.Steps, sol.Stats.Rejected, sol.Stats.Evals)

	if err := viz.PlotComponents(w, sol, []string{"prey", "predator"}, 2); err != nil {
		return err
	}

	// The Solution interpolates between saved points.
	y := sol.At(5.0)
	fmt.Fprintf(w, "interpolated state at t=5: prey=%.4f predator=%.4f\n", y[0], y[1])
	return nil
}

func runChoosingSolvers(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "the harmonic oscillator has the exact solution x(t)=cos(t),")
	fmt.Fprintln(w, "so we can measure each solver's true error per RHS evaluation.")
	fmt.Fprintln(w)

	names := []string{"euler", "heun", "rk4", "dopri5"}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVER\tERROR AT t=10\tRHS EVALS")

	for _, name := range names {
		st, err := solvers.Get(name)
		if err != nil {
			return err
		}

		prob := problems.HarmonicOscillator()
		opts := deq.DefaultOptions()
		opts.Dt = 0.01
		opts.Adaptive = name == "dopri5"

		sol, err := solvers.SolveODE(ctx, prob, st, opts)
		if err != nil {
			return err
		}

		_, yEnd := sol.Last()
		errAbs := math.Abs(yEnd[0] - math.Cos(10.0))
		fmt.Fprintf(tw, "%s\t%.2e\t%d\n", name, errAbs, sol.Stats.Evals)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nhigher order buys accuracy per evaluation; adaptive stepping")
	fmt.Fprintln(w, "spends those evaluations only where the solution demands them.")
	return nil
}
