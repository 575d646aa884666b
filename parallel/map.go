package parallel

import (
	"errors"
	"fmt"

	"rangekit/pool"
)

// Map applies transform to every element on an ephemeral pool and returns the results
// in input order. Each task writes only its own index of the output, so no further
// synchronization is needed once the pool has been closed.
func Map[T, R any](items []T, transform func(T) R, opts ...pool.Option) ([]R, error) {
	if transform == nil {
		return nil, pool.ErrNilTask
	}
	if len(items) == 0 {
		return []R{}, nil
	}

	// no point starting more workers than there are elements
	workers := min(pool.HardwareConcurrency(), len(items))
	p, err := pool.New(workers, opts...)
	if err != nil {
		return nil, err
	}

	res := make([]R, len(items))
	for i, v := range items {
		if err := p.Submit(func() { res[i] = transform(v) }); err != nil {
			p.Close()
			return nil, fmt.Errorf("parallel: submit element %d: %w", i, err)
		}
	}
	p.Close()
	return res, nil
}

// MapOn applies transform to every element on the shared pool p and waits for those
// tasks only; other work on p is not waited for.
// A panic in transform is reported as an error wrapping pool.ErrTaskPanicked.
func MapOn[T, R any](p *pool.Pool, items []T, transform func(T) R) ([]R, error) {
	if transform == nil {
		return nil, pool.ErrNilTask
	}

	futures := make([]*pool.Future[R], 0, len(items))
	var submitErr error
	for i, v := range items {
		f, err := pool.Go(p, func() (R, error) { return transform(v), nil })
		if err != nil {
			submitErr = fmt.Errorf("parallel: submit element %d: %w", i, err)
			break
		}
		futures = append(futures, f)
	}

	res := make([]R, len(items))
	var errs []error
	if submitErr != nil {
		errs = append(errs, submitErr)
	}
	for i, f := range futures {
		v, err := f.Result()
		if err != nil {
			errs = append(errs, fmt.Errorf("parallel: element %d: %w", i, err))
			continue
		}
		res[i] = v
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}
