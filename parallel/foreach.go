package parallel

import (
	"fmt"
	"iter"
	"slices"

	"rangekit/pool"
)

// ForEachOn submits one task per element of items to p, in iteration order.
// Each task gets a copy of its element taken at submission time, so later mutation of
// the source does not reach tasks already queued.
// ForEachOn does not wait for the tasks. If p rejects a task, submission stops there
// and the error is returned; tasks already submitted still run.
func ForEachOn[T any](p *pool.Pool, items iter.Seq[T], f func(T)) error {
	if f == nil {
		return pool.ErrNilTask
	}
	i := 0
	for v := range items {
		if err := p.Submit(func() { f(v) }); err != nil {
			return fmt.Errorf("parallel: submit element %d: %w", i, err)
		}
		i++
	}
	return nil
}

// ForEachN runs f over items on an ephemeral pool of workers goroutines and returns
// once every task has run.
func ForEachN[T any](workers int, items iter.Seq[T], f func(T), opts ...pool.Option) error {
	p, err := pool.New(workers, opts...)
	if err != nil {
		return err
	}
	// closing the ephemeral pool is the drain point
	defer p.Close()
	return ForEachOn(p, items, f)
}

// ForEach runs f over items on an ephemeral pool sized to the host's hardware
// concurrency and returns once every task has run.
func ForEach[T any](items iter.Seq[T], f func(T), opts ...pool.Option) error {
	return ForEachN(pool.HardwareConcurrency(), items, f, opts...)
}

// ForEachSlice is ForEach over the elements of a slice.
func ForEachSlice[T any](items []T, f func(T), opts ...pool.Option) error {
	return ForEach(slices.Values(items), f, opts...)
}
