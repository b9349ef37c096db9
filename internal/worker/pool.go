// Package worker runs a function over many inputs with bounded concurrency.
package worker

import (
	"context"
	"sync"
)

// Result pairs an input with the output or error produced for it.
type Result[I, O any] struct {
	Input  I
	Output O
	Err    error
}

// Run calls fn for every input using at most concurrency goroutines and
// returns the results in input order. Inputs not yet started when ctx is
// done get ctx.Err() as their error and fn is not called for them.
func Run[I, O any](ctx context.Context, inputs []I, concurrency int, fn func(context.Context, I) (O, error)) []Result[I, O] {
	results := make([]Result[I, O], len(inputs))
	if len(inputs) == 0 {
		return results
	}
	concurrency = max(1, min(concurrency, len(inputs)))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := Result[I, O]{Input: inputs[i]}
				if err := ctx.Err(); err != nil {
					res.Err = err
				} else {
					res.Output, res.Err = fn(ctx, inputs[i])
				}
				results[i] = res
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
