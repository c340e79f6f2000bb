package services

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultFanoutWorkers bounds concurrent ledger reads per batch when the
// config does not say otherwise.
const DefaultFanoutWorkers = 20

// fanOut runs fn once per item with at most limit invocations in flight.
// A failed item is counted and skipped, never aborting its siblings; the
// worker goroutines always return nil so the group context stays live for
// the rest of the batch. Results arrive in completion order; callers
// that need an order must sort. Cancellation of ctx is honored between
// tasks and inside fn via the group context.
func fanOut[T any, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) ([]R, int) {
	if limit <= 0 {
		limit = DefaultFanoutWorkers
	}

	out := make(chan R, len(items))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, item := range items {
		item := item
		g.Go(func() error {
			if gctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			r, err := fn(gctx, item)
			if err != nil {
				failed.Add(1)
				return nil
			}
			out <- r
			return nil
		})
	}
	_ = g.Wait()
	close(out)

	results := make([]R, 0, len(items))
	for r := range out {
		results = append(results, r)
	}
	return results, int(failed.Load())
}
