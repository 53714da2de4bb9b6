package estimate

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
)

func TestGridSearchQuadratic(t *testing.T) {
	search := NewGridSearch(
		[]string{"a", "b"},
		[][]float64{
			{0, 1, 2, 3},
			{-1, 0, 1},
		},
	)

	loss := func(p deq.Params) (float64, error) {
		da := p["a"] - 2
		db := p["b"] - 0
		return da*da + db*db, nil
	}

	best, bestLoss, err := search.Search(context.Background(), loss)
	if err != nil {
		t.Fatal(err)
	}
	if best["a"] != 2 || best["b"] != 0 {
		t.Errorf("expected a=2 b=0, got %v", best)
	}
	if bestLoss != 0 {
		t.Errorf("expected zero loss, got %f", bestLoss)
	}
}

func TestGridSearchSkipsFailures(t *testing.T) {
	search := NewGridSearch([]string{"a"}, [][]float64{{1, 2, 3}})
	loss := func(p deq.Params) (float64, error) {
		if p["a"] == 2 {
			return 0, deq.ErrUnstable
		}
		return math.Abs(p["a"] - 2), nil
	}

	best, _, err := search.Search(context.Background(), loss)
	if err != nil {
		t.Fatal(err)
	}
	// a=2 would be optimal but fails, so a neighbor wins.
	if best["a"] == 2 {
		t.Error("failing combination should have been skipped")
	}
}

func TestTrajectoryLossHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loss := TrajectoryLoss(ctx, problems.LinearDecay(1.0), solvers.NewRK4(),
		deq.DefaultOptions(), []float64{0.5}, []float64{0.5}, 0)

	if _, err := loss(deq.Params{"lambda": 1.0}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled from the solve, got %v", err)
	}
}

func TestTrajectoryLossRecoversDecayRate(t *testing.T) {
	truth := problems.LinearDecay(0.7)
	opts := deq.DefaultOptions()
	opts.Dt = 0.01

	ref, err := solvers.SolveODE(context.Background(), truth, solvers.NewRK4(), opts)
	if err != nil {
		t.Fatal(err)
	}

	times := []float64{0.2, 0.4, 0.6, 0.8, 1.0}
	data := make([]float64, len(times))
	for i, tt := range times {
		data[i] = ref.At(tt)[0]
	}

	search := NewGridSearch([]string{"lambda"}, [][]float64{{0.1, 0.3, 0.5, 0.7, 0.9}})
	loss := TrajectoryLoss(context.Background(), truth, solvers.NewRK4(), opts, times, data, 0)

	best, bestLoss, err := search.Search(context.Background(), loss)
	if err != nil {
		t.Fatal(err)
	}
	if best["lambda"] != 0.7 {
		t.Errorf("expected lambda=0.7 recovered, got %v (loss %e)", best, bestLoss)
	}
	if bestLoss > 1e-10 {
		t.Errorf("loss at the true parameter should vanish, got %e", bestLoss)
	}
}
