package estimate

import (
	"context"
	"math"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/solvers"
)

// GridSearch exhaustively scans parameter combinations, keeping the one
// with the lowest loss.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates loss for every combination in the grid and returns the
// best parameter set and its loss.
func (g *GridSearch) Search(ctx context.Context, loss func(params deq.Params) (float64, error)) (deq.Params, float64, error) {
	best := math.Inf(1)
	var bestParams deq.Params

	err := g.searchRecursive(ctx, 0, make(deq.Params), loss, &best, &bestParams)
	return bestParams, best, err
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current deq.Params, loss func(deq.Params) (float64, error), best *float64, bestParams *deq.Params) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if depth == len(g.paramNames) {
		val, err := loss(current)
		if err != nil {
			return nil // skip combinations the solver rejects
		}
		if val < *best {
			*best = val
			*bestParams = current.Clone()
		}
		return nil
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := current.Clone()
		next[name] = val
		if err := g.searchRecursive(ctx, depth+1, next, loss, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}

// TrajectoryLoss builds an L2 loss between the solved trajectory of prob
// (with candidate parameters substituted) and reference data sampled at the
// given times for state component idx. Canceling ctx aborts in-flight solves.
func TrajectoryLoss(ctx context.Context, prob deq.ODEProblem, st solvers.Stepper, opts deq.Options, times, data []float64, idx int) func(deq.Params) (float64, error) {
	return func(params deq.Params) (float64, error) {
		candidate := prob
		merged := prob.Params.Clone()
		for k, v := range params {
			merged[k] = v
		}
		candidate.Params = merged

		sol, err := solvers.SolveODE(ctx, candidate, st, opts)
		if err != nil {
			return 0, err
		}

		sum := 0.0
		for i, t := range times {
			y := sol.At(t)
			d := y[idx] - data[i]
			sum += d * d
		}
		return sum, nil
	}
}
