package tutorials

import (
	"context"
	"fmt"
	"io"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
	"github.com/san-kum/diffeq/internal/viz"
)

func init() {
	register(Tutorial{
		Name:    "callbacks_bounce",
		Summary: "event handling with a continuous callback (bouncing ball)",
		Run:     runCallbacksBounce,
	})
}

func runCallbacksBounce(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "callbacks hook into the solve loop: a continuous callback")
	fmt.Fprintln(w, "watches a sign change, localizes the crossing by bisection and")
	fmt.Fprintln(w, "modifies the state at the event time. here: impact reverses")
	fmt.Fprintln(w, "velocity scaled by the restitution coefficient.")
	fmt.Fprintln(w)

	prob, bounce := problems.BouncingBall(0.8)

	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.SaveEvery = 10
	opts.Callbacks = []deq.Callback{bounce}

	sol, err := solvers.SolveODE(ctx, prob, solvers.NewRK4(), opts)
	if err != nil {
		return err
	}

	minH := 0.0
	for _, y := range sol.States {
		if y[0] < minH {
			minH = y[0]
		}
	}
	fmt.Fprintf(w, "lowest saved height: %.4f (events keep the ball above ground)\n\n", minH)

	return viz.PlotComponents(w, sol, []string{"height", "velocity"}, 1)
}
