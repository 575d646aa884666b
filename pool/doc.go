/*
Package pool provides a fixed-size worker pool fed by a shared FIFO task queue.

A [Pool] owns a set of worker goroutines created once in [New] and joined once in
[Pool.Close]. Workers block on the queue while idle and exit only after the pool is
closed and every queued task has run, so Close is the drain point:

	p, err := pool.New(4)
	if err != nil {
		return err
	}
	for i := range 1000 {
		_ = p.Submit(func() { counter.Add(1) })
	}
	p.Close() // every accepted task has run once Close returns

# Failure semantics

The pool does not retry or collect task errors. A panicking task is not recovered
unless [WithPanicHandler] is supplied; without one the Go runtime terminates the
process, which is the default for an unrecovered panic on any goroutine.

Callers needing a value back use [Go], which returns a [Future] and turns a panic in
the task into an error wrapping [ErrTaskPanicked].

# Shutdown

Submit after Close has begun fails with [ErrPoolClosed]. Every task accepted before
that point runs before Close returns.
*/
package pool
