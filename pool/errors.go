package pool

import "errors"

var (
	ErrInvalidWorkerCount = errors.New("pool: worker count must be positive")
	ErrNilTask            = errors.New("pool: task cannot be nil")
	ErrPoolClosed         = errors.New("pool: pool is closed")
	ErrTaskPanicked       = errors.New("pool: task panicked")
)
