package pool

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "rangekit"

// MetricsMonitor exports pool activity as Prometheus metrics labelled with the pool name.
type MetricsMonitor struct {
	submitted   prometheus.Counter
	completed   prometheus.Counter
	panicked    prometheus.Counter
	workerExits prometheus.Counter
	duration    prometheus.Histogram
	queued      prometheus.Gauge
}

var _ Monitor = (*MetricsMonitor)(nil)

// NewMetricsMonitor creates the pool collectors and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewMetricsMonitor(reg prometheus.Registerer, poolName string) (*MetricsMonitor, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := prometheus.Labels{"pool": poolName}

	m := &MetricsMonitor{
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "tasks_submitted_total",
			Help:        "Tasks accepted by Submit.",
			ConstLabels: labels,
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "tasks_completed_total",
			Help:        "Tasks that returned normally.",
			ConstLabels: labels,
		}),
		panicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "tasks_panicked_total",
			Help:        "Tasks whose panic was recovered by the pool.",
			ConstLabels: labels,
		}),
		workerExits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "worker_exits_total",
			Help:        "Workers that left their loop after shutdown.",
			ConstLabels: labels,
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "task_duration_seconds",
			Help:        "Wall time spent running a task.",
			Buckets:     prometheus.ExponentialBuckets(0.00001, 4, 10),
			ConstLabels: labels,
		}),
		queued: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "queue_depth",
			Help:        "Tasks waiting for a worker.",
			ConstLabels: labels,
		}),
	}

	collectors := []prometheus.Collector{m.submitted, m.completed, m.panicked, m.workerExits, m.duration, m.queued}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// leave reg as it was
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("pool: register metrics for %q: %w", poolName, err)
		}
	}
	return m, nil
}

// The depth gauge moves by one per callback rather than taking the sampled depth, so
// interleaved submit and dequeue reports cannot leave a stale value behind.
func (m *MetricsMonitor) OnSubmit(int) {
	m.submitted.Inc()
	m.queued.Inc()
}

func (m *MetricsMonitor) OnDequeue(int, int) {
	m.queued.Dec()
}

func (m *MetricsMonitor) OnComplete(_ int, elapsed time.Duration) {
	m.completed.Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *MetricsMonitor) OnPanic(int, any, []byte) {
	m.panicked.Inc()
}

func (m *MetricsMonitor) OnWorkerExit(int) {
	m.workerExits.Inc()
}
