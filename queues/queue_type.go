package queues

// Queue is the part of a FIFO that a consumer pool depends on.
type Queue[T any] interface {
	// puts an element at the end of the queue, fails once the queue is closed
	Enqueue(value T) error
	// removes and returns the element at the front of the queue without waiting
	TryDequeue() (value T, ok bool)
	// removes and returns the element at the front of the queue, waiting for one to arrive.
	// ok is false only when the queue is closed and has been drained
	DequeueOrWait() (value T, ok bool)
	// returns the number of elements in the queue
	Size() int
	// returns true if the queue is empty
	IsEmpty() bool
	// stops accepting new elements; queued elements remain dequeueable
	Close()
	// reports whether Close has been called
	IsClosed() bool
}
