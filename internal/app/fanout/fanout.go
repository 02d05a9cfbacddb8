// Package fanout runs a function over a batch of items on a bounded pool of
// workers. The note service uses it to sweep due reminders without opening
// one store call per note at once.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic marks a result whose fn panicked.
var ErrPanic = errors.New("fanout: worker panicked")

// Result is the outcome for one item: Value when Err is nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item on at most maxWorkers goroutines (at least
// one) and returns the results in input order. It blocks until each item
// has a result.
//
// Once ctx is done, items not yet handed to fn get ctx.Err() instead. A
// panic in fn becomes that item's error, wrapping ErrPanic.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	indexes := make(chan int, len(items))
	for i := range items {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	for range min(max(maxWorkers, 1), len(items)) {
		wg.Go(func() {
			for i := range indexes {
				results[i] = call(ctx, items[i], fn)
			}
		})
	}
	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if err := ctx.Err(); err != nil {
		return Result[R]{Err: err}
	}
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, v)}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
