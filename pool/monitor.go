package pool

import "time"

// Monitor observes pool activity. Implementations must be safe for concurrent use;
// callbacks run on submitter and worker goroutines.
type Monitor interface {
	// OnSubmit is called after a task is queued, with the queue depth observed afterwards.
	// A fast worker may report OnDequeue for the same task first.
	OnSubmit(queued int)
	// OnDequeue is called when a worker takes a task off the queue, with the depth left behind.
	OnDequeue(worker int, queued int)
	// OnComplete is called after a task returns normally.
	OnComplete(worker int, elapsed time.Duration)
	// OnPanic is called when a worker recovers a task panic.
	// Only reachable when the pool has a PanicHandler.
	OnPanic(worker int, recovered any, stack []byte)
	// OnWorkerExit is called once per worker as it leaves its loop during Close.
	OnWorkerExit(worker int)
}

type NoopMonitor struct{}

func (NoopMonitor) OnSubmit(int)                  {}
func (NoopMonitor) OnDequeue(int, int)            {}
func (NoopMonitor) OnComplete(int, time.Duration) {}
func (NoopMonitor) OnPanic(int, any, []byte)      {}
func (NoopMonitor) OnWorkerExit(int)              {}

type multiMonitor []Monitor

// MultiMonitor returns a Monitor that forwards every callback to each of monitors in order.
func MultiMonitor(monitors ...Monitor) Monitor {
	var flat multiMonitor
	for _, m := range monitors {
		switch m := m.(type) {
		case nil:
		case multiMonitor:
			flat = append(flat, m...)
		default:
			flat = append(flat, m)
		}
	}
	return flat
}

func (mm multiMonitor) OnSubmit(queued int) {
	for _, m := range mm {
		m.OnSubmit(queued)
	}
}

func (mm multiMonitor) OnDequeue(worker int, queued int) {
	for _, m := range mm {
		m.OnDequeue(worker, queued)
	}
}

func (mm multiMonitor) OnComplete(worker int, elapsed time.Duration) {
	for _, m := range mm {
		m.OnComplete(worker, elapsed)
	}
}

func (mm multiMonitor) OnPanic(worker int, recovered any, stack []byte) {
	for _, m := range mm {
		m.OnPanic(worker, recovered, stack)
	}
}

func (mm multiMonitor) OnWorkerExit(worker int) {
	for _, m := range mm {
		m.OnWorkerExit(worker)
	}
}
