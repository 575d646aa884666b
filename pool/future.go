package pool

import (
	"context"
	"fmt"
)

// Future is the one-shot result of a task submitted with Go.
type Future[R any] struct {
	done chan struct{}
	val  R
	err  error
}

// Go submits fn to p and returns a Future that resolves when fn returns.
// A panic in fn is recovered and reported through the Future as an error wrapping
// ErrTaskPanicked; it never reaches the pool's panic handler.
func Go[R any](p *Pool, fn func() (R, error)) (*Future[R], error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	f := &Future[R]{done: make(chan struct{})}
	err := p.Submit(func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
			}
		}()
		f.val, f.err = fn()
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Done returns a channel closed once the result is available.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Get waits for the result or for ctx to end, whichever comes first.
func (f *Future[R]) Get(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Result blocks until the task has run.
func (f *Future[R]) Result() (R, error) {
	<-f.done
	return f.val, f.err
}
