package tutorials

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
)

func init() {
	register(Tutorial{
		Name:    "dae_robertson",
		Summary: "differential-algebraic equations in mass-matrix form",
		Run:     runDAERobertson,
	})
}

func runDAERobertson(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "a DAE poses M*y' = f with a possibly singular mass matrix:")
	fmt.Fprintln(w, "zero rows of M are algebraic constraints. robertson's third")
	fmt.Fprintln(w, "equation becomes the conservation law y1+y2+y3 = 1.")
	fmt.Fprintln(w)

	prob := problems.RobertsonDAE()
	opts := deq.DefaultOptions()
	opts.Dt = 0.001
	opts.SaveEvery = 1000

	sol, err := solvers.SolveDAE(ctx, prob, opts)
	if err != nil {
		return err
	}

	t, y := sol.Last()
	fmt.Fprintf(w, "t=%.1f: y1=%.6f  y2=%.2e  y3=%.6f\n", t, y[0], y[1], y[2])

	worst := 0.0
	for _, st := range sol.States {
		v := math.Abs(st[0] + st[1] + st[2] - 1.0)
		if v > worst {
			worst = v
		}
	}
	fmt.Fprintf(w, "max constraint violation along the trajectory: %.2e\n", worst)
	fmt.Fprintln(w, "\nthe algebraic row pins the invariant exactly at every step,")
	fmt.Fprintln(w, "where the plain ODE form only conserves it up to solver error.")
	return nil
}
