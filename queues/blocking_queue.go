package queues

import (
	"errors"
	"sync"

	"github.com/eapache/queue"
)

var (
	ErrQueueClosed = errors.New("queue is closed")
)

var _ Queue[int] = (*BlockingQueue[int])(nil)

// BlockingQueue is an unbounded, thread-safe FIFO queue.
// Consumers block in DequeueOrWait until an element arrives or the queue is closed and drained.
// Closing never discards queued elements.
type BlockingQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	q        *queue.Queue
	closed   bool
}

// NewBlockingQueue creates an empty, open BlockingQueue.
func NewBlockingQueue[T any]() *BlockingQueue[T] {
	bq := &BlockingQueue[T]{
		q: queue.New(),
	}
	bq.notEmpty = sync.NewCond(&bq.mu)
	return bq
}

// Enqueue appends value to the tail of the queue and wakes one waiting consumer.
// It never blocks on capacity.
func (bq *BlockingQueue[T]) Enqueue(value T) error {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	if bq.closed {
		return ErrQueueClosed
	}
	bq.q.Add(value)
	bq.notEmpty.Signal()
	return nil
}

// EnqueueAll appends values in order, atomically with respect to other producers.
func (bq *BlockingQueue[T]) EnqueueAll(values ...T) error {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	if bq.closed {
		return ErrQueueClosed
	}
	for _, v := range values {
		bq.q.Add(v)
	}
	if len(values) == 1 {
		bq.notEmpty.Signal()
	} else if len(values) > 1 {
		bq.notEmpty.Broadcast()
	}
	return nil
}

func (bq *BlockingQueue[T]) TryDequeue() (T, bool) {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	return bq.pop()
}

func (bq *BlockingQueue[T]) DequeueOrWait() (T, bool) {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	for bq.q.Length() == 0 && !bq.closed {
		bq.notEmpty.Wait()
	}
	return bq.pop()
}

// pop must be called with the lock held.
func (bq *BlockingQueue[T]) pop() (T, bool) {
	if bq.q.Length() == 0 {
		var zero T
		return zero, false
	}
	// comma-ok keeps nil interface values from panicking the assertion
	v, _ := bq.q.Remove().(T)
	return v, true
}

func (bq *BlockingQueue[T]) Peek() (T, bool) {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	if bq.q.Length() == 0 {
		var zero T
		return zero, false
	}
	v, _ := bq.q.Peek().(T)
	return v, true
}

func (bq *BlockingQueue[T]) Size() int {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	return bq.q.Length()
}

func (bq *BlockingQueue[T]) IsEmpty() bool {
	return bq.Size() == 0
}

// Close stops the queue from accepting new elements and wakes every waiting consumer.
// Elements already queued can still be dequeued. Calling Close more than once is a no-op.
func (bq *BlockingQueue[T]) Close() {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	if bq.closed {
		return
	}
	bq.closed = true
	bq.notEmpty.Broadcast()
}

func (bq *BlockingQueue[T]) IsClosed() bool {
	bq.mu.Lock()
	defer bq.mu.Unlock()
	return bq.closed
}
