package tutorials

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/ensemble"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
	"github.com/san-kum/diffeq/internal/viz"
)

func init() {
	register(Tutorial{
		Name:    "sde_intro",
		Summary: "stochastic equations: single paths and the analytic mean",
		Run:     runSDEIntro,
	})
	register(Tutorial{
		Name:    "ensemble_gbm",
		Summary: "parallel ensemble of SDE paths with summary statistics",
		Run:     runEnsembleGBM,
	})
}

func runSDEIntro(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "an SDE problem adds a diffusion term g to the drift f:")
	fmt.Fprintln(w, "dy = f dt + g dW. each seed fixes one realization of the noise.")
	fmt.Fprintln(w)

	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.SaveEvery = 10

	for _, seed := range []int64{1, 2, 3} {
		prob := problems.GBM(0.05, 0.2, seed)
		sol, err := solvers.SolveSDE(ctx, prob, solvers.NewEulerMaruyama(), opts)
		if err != nil {
			return err
		}
		_, yEnd := sol.Last()
		fmt.Fprintf(w, "seed %d: y(1) = %.4f\n", seed, yEnd[0])
	}

	fmt.Fprintf(w, "analytic mean E[y(1)] = %.4f\n\n", math.Exp(0.05))

	prob := problems.GBM(0.05, 0.2, 7)
	sol, err := solvers.SolveSDE(ctx, prob, solvers.NewMilstein(), opts)
	if err != nil {
		return err
	}
	return viz.PlotComponents(w, sol, []string{"gbm path (milstein, seed 7)"}, 1)
}

func runEnsembleGBM(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "an ensemble is a batch of independent solves; the backend")
	fmt.Fprintln(w, "decides how they execute. here: 200 GBM paths on a worker pool,")
	fmt.Fprintln(w, "reduced to mean and spread.")
	fmt.Fprintln(w)

	const paths = 200
	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.SaveEvery = 10

	sols, err := ensemble.Run(ctx, paths, ensemble.Workers{}, func(i int) (*deq.Solution, error) {
		prob := problems.GBM(0.05, 0.2, int64(i+1))
		return solvers.SolveSDE(ctx, prob, solvers.NewEulerMaruyama(), opts)
	})
	if err != nil {
		return err
	}

	sum, err := ensemble.Summarize(sols, 0)
	if err != nil {
		return err
	}

	last := len(sum.Mean) - 1
	fmt.Fprintf(w, "mean y(1) over %d paths: %.4f (analytic %.4f)\n", paths, sum.Mean[last], math.Exp(0.05))
	fmt.Fprintf(w, "std  y(1): %.4f\n\n", sum.Std[last])

	viz.PlotSeries(w, sum.Mean, "ensemble mean", 10)
	viz.PlotSeries(w, sum.Std, "ensemble std", 8)
	return nil
}
