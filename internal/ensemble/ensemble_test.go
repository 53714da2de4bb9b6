package ensemble_test

import (
	"context"
	"fmt"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/ensemble"
)

// constantSolution builds a two-point trajectory fixed at value v.
func constantSolution(v float64) *deq.Solution {
	sol := deq.NewSolution(2)
	sol.Push(0, deq.State{v})
	sol.Push(1, deq.State{v})
	return sol
}

var _ = Describe("Run", func() {
	solve := func(i int) (*deq.Solution, error) {
		return constantSolution(float64(i)), nil
	}

	It("runs every trajectory serially in order", func() {
		sols, err := ensemble.Run(context.Background(), 8, ensemble.Serial{}, solve)
		Expect(err).NotTo(HaveOccurred())
		Expect(sols).To(HaveLen(8))
		for i, s := range sols {
			Expect(s.States[0][0]).To(Equal(float64(i)))
		}
	})

	It("produces the same results over the worker pool", func() {
		var calls int64
		counted := func(i int) (*deq.Solution, error) {
			atomic.AddInt64(&calls, 1)
			return solve(i)
		}

		sols, err := ensemble.Run(context.Background(), 32, ensemble.Workers{N: 4}, counted)
		Expect(err).NotTo(HaveOccurred())
		Expect(calls).To(Equal(int64(32)))
		for i, s := range sols {
			Expect(s.States[0][0]).To(Equal(float64(i)))
		}
	})

	It("propagates a failing trajectory", func() {
		failing := func(i int) (*deq.Solution, error) {
			if i == 3 {
				return nil, fmt.Errorf("trajectory %d diverged", i)
			}
			return solve(i)
		}

		_, err := ensemble.Run(context.Background(), 8, ensemble.Workers{N: 2}, failing)
		Expect(err).To(MatchError(ContainSubstring("diverged")))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ensemble.Run(ctx, 100, ensemble.Serial{}, solve)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Summarize", func() {
	It("computes mean and spread across trajectories", func() {
		sols := []*deq.Solution{
			constantSolution(1),
			constantSolution(2),
			constantSolution(3),
		}

		sum, err := ensemble.Summarize(sols, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(sum.Mean).To(HaveExactElements(2.0, 2.0))
		Expect(sum.Std[0]).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("rejects mismatched time grids", func() {
		short := deq.NewSolution(1)
		short.Push(0, deq.State{1})

		_, err := ensemble.Summarize([]*deq.Solution{constantSolution(1), short}, 0)
		Expect(err).To(HaveOccurred())
	})

	It("reports zero spread for a single trajectory", func() {
		sum, err := ensemble.Summarize([]*deq.Solution{constantSolution(5)}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(sum.Std[0]).To(BeZero())
	})
})

var _ = Describe("Quantile", func() {
	It("picks order statistics with interpolation", func() {
		sols := []*deq.Solution{
			constantSolution(10),
			constantSolution(20),
			constantSolution(30),
			constantSolution(40),
			constantSolution(50),
		}

		median, err := ensemble.Quantile(sols, 0, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(median[0]).To(Equal(30.0))

		q90, err := ensemble.Quantile(sols, 0, 0.9)
		Expect(err).NotTo(HaveOccurred())
		Expect(q90[0]).To(BeNumerically("~", 46.0, 1e-12))
	})

	It("rejects mismatched time grids", func() {
		short := deq.NewSolution(1)
		short.Push(0, deq.State{1})

		_, err := ensemble.Quantile([]*deq.Solution{constantSolution(1), short}, 0, 0.5)
		Expect(err).To(HaveOccurred())
	})
})
