package ranges

import (
	"rangekit/parallel"
	"rangekit/pool"
)

// AsyncForEachOn submits f(v) for every element to the shared pool p and returns
// without waiting. Each task receives a copy of its element taken at submission, so
// mutating r afterwards does not change what the tasks see. The work is complete only
// once p is drained with Wait or Close.
func (r *Range[T]) AsyncForEachOn(p *pool.Pool, f func(T)) (*Range[T], error) {
	return r, parallel.ForEachOn(p, r.Values(), f)
}

// AsyncForEach runs f(v) for every element on an ephemeral pool sized to the host's
// hardware concurrency, and returns only after every call has finished.
func (r *Range[T]) AsyncForEach(f func(T), opts ...pool.Option) (*Range[T], error) {
	return r, parallel.ForEach(r.Values(), f, opts...)
}
