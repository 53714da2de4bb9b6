package tutorials

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/estimate"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
)

func init() {
	register(Tutorial{
		Name:    "fit_lotka",
		Summary: "parameter estimation against trajectory data by grid search",
		Run:     runFitLotka,
	})
}

func runFitLotka(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "parameter estimation closes the loop: solve with candidate")
	fmt.Fprintln(w, "parameters, compare against data, keep the best. the reference")
	fmt.Fprintln(w, "data comes from a solve with known parameters.")
	fmt.Fprintln(w)

	truth := problems.LotkaVolterra()
	opts := deq.DefaultOptions()
	opts.Dt = 0.01

	ref, err := solvers.SolveODE(ctx, truth, solvers.NewRK4(), opts)
	if err != nil {
		return err
	}

	times := make([]float64, 0, 20)
	data := make([]float64, 0, 20)
	for t := 0.5; t <= 10.0; t += 0.5 {
		y := ref.At(t)
		times = append(times, t)
		data = append(data, y[0])
	}

	search := estimate.NewGridSearch(
		[]string{"alpha", "gamma"},
		[][]float64{
			{1.0, 1.25, 1.5, 1.75, 2.0},
			{2.0, 2.5, 3.0, 3.5, 4.0},
		},
	)

	loss := estimate.TrajectoryLoss(ctx, truth, solvers.NewRK4(), opts, times, data, 0)
	best, bestLoss, err := search.Search(ctx, loss)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "true:  alpha=%.2f gamma=%.2f\n", truth.Params["alpha"], truth.Params["gamma"])
	fmt.Fprintf(w, "found: alpha=%.2f gamma=%.2f (loss %.2e over %d samples)\n",
		best["alpha"], best["gamma"], bestLoss, len(times))
	return nil
}
