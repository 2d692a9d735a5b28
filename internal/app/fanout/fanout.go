// Package fanout runs one call per item with a bounded number in flight and
// keeps every outcome, so a bulk operation can report partial success.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, otherwise Err.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most limit calls in flight (at least
// one) and returns results in input order. One failure does not stop the
// others. Items not yet started when ctx ends get ctx's error without fn
// being called; fn is expected to watch ctx itself once running.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		// Go blocks here until a slot frees up.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Failure pairs an item with its error.
type Failure[T any] struct {
	Item T
	Err  error
}

// Split separates the results of Run over items into values and failures,
// both in input order.
func Split[T, R any](items []T, results []Result[R]) ([]R, []Failure[T]) {
	var (
		ok     []R
		failed []Failure[T]
	)
	for i, r := range results {
		if r.Err != nil {
			failed = append(failed, Failure[T]{Item: items[i], Err: r.Err})
			continue
		}
		ok = append(ok, r.Value)
	}
	return ok, failed
}
