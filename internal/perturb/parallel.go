package perturb

import (
	"context"
	"runtime"
	"sync"
)

// minChunk is the smallest batch slice worth handing to a worker; below
// this the goroutine overhead dominates the closed-form evaluation.
const minChunk = 64

// EvaluateAll computes both terms for every state point, preserving
// input order. State points are validated up front so an invalid point
// fails the whole batch before any work is done. Evaluations share only
// the immutable derived constants, so workers need no locking: each
// writes its own index range of the output slice.
func (e *Evaluator) EvaluateAll(ctx context.Context, points []StatePoint) ([]Result, error) {
	for i, pt := range points {
		if err := pt.Validate(); err != nil {
			return nil, &StateError{Index: i, Point: pt, Wrapped: err}
		}
	}

	results := make([]Result, len(points))
	var firstErr error
	var mu sync.Mutex

	parallelFor(len(points), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			select {
			case <-ctx.Done():
				mu.Lock()
				if firstErr == nil {
					firstErr = ctx.Err()
				}
				mu.Unlock()
				return
			default:
			}

			r, err := e.Evaluate(points[i])
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = &StateError{Index: i, Point: points[i], Wrapped: err}
				}
				mu.Unlock()
				return
			}
			results[i] = r
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// parallelFor executes fn over [0, n) in contiguous chunks.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
