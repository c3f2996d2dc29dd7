package concurrency

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Task func(ctx context.Context) error

// Parallel runs tasks with at most limit in flight and returns the first error.
// The context passed to the tasks is cancelled as soon as one of them fails.
// A limit <= 0 means no bound.
func Parallel(ctx context.Context, limit int, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, task := range tasks {
		g.Go(func() error {
			return task(gctx)
		})
	}
	return g.Wait()
}

// Settle runs every task to completion and reports each outcome by index.
// A failing task does not cancel the others.
func Settle(ctx context.Context, tasks ...Task) []error {
	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = task(ctx)
		}()
	}
	wg.Wait()
	return errs
}
