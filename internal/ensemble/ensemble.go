package ensemble

import (
	"context"
	"runtime"
	"sync"

	"github.com/san-kum/diffeq/internal/deq"
)

// Backend selects how the independent solves of an ensemble execute.
type Backend interface {
	Run(ctx context.Context, n int, fn func(i int) error) error
}

// Serial runs the solves one after another.
type Serial struct{}

func (Serial) Run(ctx context.Context, n int, fn func(i int) error) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// Workers fans the solves out over N goroutines (0 means GOMAXPROCS).
type Workers struct {
	N int
}

func (w Workers) Run(ctx context.Context, n int, fn func(i int) error) error {
	workers := w.N
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(workers)
	for k := 0; k < workers; k++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Run executes n independent solves over the backend. solve(i) builds and
// integrates the i-th trajectory; varying initial conditions, parameters or
// seeds is the caller's business.
func Run(ctx context.Context, n int, backend Backend, solve func(i int) (*deq.Solution, error)) ([]*deq.Solution, error) {
	sols := make([]*deq.Solution, n)
	err := backend.Run(ctx, n, func(i int) error {
		sol, err := solve(i)
		if err != nil {
			return err
		}
		sols[i] = sol
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sols, nil
}
