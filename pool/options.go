package pool

// PanicHandler receives a panic recovered from a task, along with the id of the worker
// that ran it and the goroutine stack at the point of the panic.
type PanicHandler func(worker int, recovered any, stack []byte)

type Option func(*config)

type config struct {
	name         string
	monitor      Monitor
	panicHandler PanicHandler
}

// WithName labels the pool in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithMonitor attaches m to the pool. Repeated calls fan out to every monitor given.
func WithMonitor(m Monitor) Option {
	return func(c *config) {
		if m == nil {
			return
		}
		if c.monitor == nil {
			c.monitor = m
			return
		}
		c.monitor = MultiMonitor(c.monitor, m)
	}
}

// WithPanicHandler makes workers recover task panics and hand them to h.
// The worker keeps running afterwards.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}
