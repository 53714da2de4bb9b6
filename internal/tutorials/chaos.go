package tutorials

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/diffeq/internal/analysis"
	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
	"github.com/san-kum/diffeq/internal/viz"
)

func init() {
	register(Tutorial{
		Name:    "chaos_lorenz",
		Summary: "detecting chaos: lyapunov exponent and power spectrum",
		Run:     runChaosLorenz,
	})
}

func runChaosLorenz(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "chaotic systems separate nearby trajectories exponentially.")
	fmt.Fprintln(w, "the largest lyapunov exponent measures that rate; positive")
	fmt.Fprintln(w, "means chaos.")
	fmt.Fprintln(w)

	lorenz := problems.Lorenz()
	lambda := analysis.LyapunovExponent(lorenz, solvers.NewRK4(), 0.01, 30, 1e-8)
	fmt.Fprintf(w, "lorenz:     lambda = %+.3f\n", lambda)

	osc := problems.HarmonicOscillator()
	lambdaOsc := analysis.LyapunovExponent(osc, solvers.NewRK4(), 0.01, 30, 1e-8)
	fmt.Fprintf(w, "oscillator: lambda = %+.3f (regular motion stays near zero)\n\n", lambdaOsc)

	opts := deq.DefaultOptions()
	opts.Dt = 0.01
	sol, err := solvers.SolveODE(ctx, lorenz, solvers.NewRK4(), opts)
	if err != nil {
		return err
	}

	xs, err := sol.Component(0)
	if err != nil {
		return err
	}
	ps := analysis.PowerSpectrum(xs)
	viz.PlotSeries(w, ps[:len(ps)/4], "power spectrum of x (broadband = chaotic)", 12)

	zs, err := sol.Component(2)
	if err != nil {
		return err
	}
	return viz.PhaseScatter(w, xs, zs, 70, 20)
}
