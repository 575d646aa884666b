package pool

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"

	"rangekit/queues"
)

// Task is a unit of work run exactly once by whichever worker dequeues it.
type Task func()

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	Workers   int
	Submitted uint64 // tasks accepted by Submit
	Completed uint64 // tasks that returned normally
	Panicked  uint64 // tasks recovered by the panic handler
	Queued    int    // tasks waiting for a worker
}

// counters are bumped from every worker, keep them off each other's cache lines.
type counters struct {
	submitted atomic.Uint64
	_         cpu.CacheLinePad
	completed atomic.Uint64
	_         cpu.CacheLinePad
	panicked  atomic.Uint64
	_         cpu.CacheLinePad
}

// Pool runs tasks on a fixed set of worker goroutines pulling from one shared FIFO queue.
type Pool struct {
	name     string
	workers  int
	queue    queues.Queue[Task]
	monitor  Monitor
	onPanic  PanicHandler
	counters counters

	// wg joins worker goroutines in Close.
	wg        sync.WaitGroup
	closeOnce sync.Once

	// pending counts tasks submitted but not yet finished, for Wait.
	mu      sync.Mutex
	idle    *sync.Cond
	pending int
}

// New starts a pool with count workers. count must be positive; there is no default.
func New(count int, opts ...Option) (*Pool, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, count)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.monitor == nil {
		// Default to silent (Noop) to avoid polluting stdout in library code
		cfg.monitor = NoopMonitor{}
	}

	p := &Pool{
		name:    cfg.name,
		workers: count,
		queue:   queues.NewBlockingQueue[Task](),
		monitor: cfg.monitor,
		onPanic: cfg.panicHandler,
	}
	p.idle = sync.NewCond(&p.mu)

	for i := 0; i < count; i++ {
		p.wg.Add(1)
		go p.workerLoop(i)
	}
	return p, nil
}

// Submit queues task at the tail of the shared queue. It never blocks on capacity.
// Tasks submitted from one goroutine are queued in submission order; ordering between
// submitters, and execution order across workers, is unspecified.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return ErrNilTask
	}

	p.mu.Lock()
	p.pending++
	p.mu.Unlock()
	// counted before the task becomes visible so Completed never overtakes Submitted
	p.counters.submitted.Add(1)

	if err := p.queue.Enqueue(task); err != nil {
		p.counters.submitted.Add(^uint64(0))
		p.taskDone()
		if errors.Is(err, queues.ErrQueueClosed) {
			return ErrPoolClosed
		}
		return err
	}

	p.monitor.OnSubmit(p.queue.Size())
	return nil
}

// ThreadCount returns the fixed number of workers.
func (p *Pool) ThreadCount() int {
	return p.workers
}

func (p *Pool) Name() string {
	return p.name
}

// Wait blocks until every task submitted so far has finished, without closing the pool.
// Tasks submitted concurrently with Wait may or may not be waited for.
// Calling Wait from inside a task deadlocks.
func (p *Pool) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.pending > 0 {
		p.idle.Wait()
	}
}

// Close stops the pool from accepting tasks, then blocks until the workers have drained
// the queue and exited. Every task accepted before Close began has run when it returns.
// Close is safe to call more than once and from several goroutines; all callers block
// until the join completes. Calling Close from inside a task deadlocks.
func (p *Pool) Close() {
	p.closeOnce.Do(p.queue.Close)
	p.wg.Wait()
}

// IsClosed reports whether Close has been called.
func (p *Pool) IsClosed() bool {
	return p.queue.IsClosed()
}

// Stats never reports more finished tasks than submitted ones.
func (p *Pool) Stats() Stats {
	// finished counters first: anything they include was already counted as submitted
	completed := p.counters.completed.Load()
	panicked := p.counters.panicked.Load()
	return Stats{
		Workers:   p.workers,
		Submitted: p.counters.submitted.Load(),
		Completed: completed,
		Panicked:  panicked,
		Queued:    p.queue.Size(),
	}
}

func (p *Pool) workerLoop(id int) {
	defer p.wg.Done()
	defer p.monitor.OnWorkerExit(id)

	for {
		task, ok := p.queue.DequeueOrWait()
		if !ok {
			// closed and drained
			return
		}
		p.monitor.OnDequeue(id, p.queue.Size())
		p.execute(id, task)
	}
}

func (p *Pool) execute(id int, task Task) {
	defer p.taskDone()
	if p.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				p.counters.panicked.Add(1)
				p.monitor.OnPanic(id, r, stack)
				p.onPanic(id, r, stack)
			}
		}()
	}

	start := time.Now()
	task()
	p.counters.completed.Add(1)
	p.monitor.OnComplete(id, time.Since(start))
}

func (p *Pool) taskDone() {
	p.mu.Lock()
	p.pending--
	if p.pending == 0 {
		p.idle.Broadcast()
	}
	p.mu.Unlock()
}
