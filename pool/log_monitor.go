package pool

import (
	"time"

	"github.com/sirupsen/logrus"
)

// LogMonitor reports pool activity through logrus.
// Per-task events go to Trace, worker exits to Debug and recovered panics to Error.
type LogMonitor struct {
	log logrus.FieldLogger
}

var _ Monitor = (*LogMonitor)(nil)

func NewLogMonitor(log logrus.FieldLogger, poolName string) *LogMonitor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if poolName != "" {
		log = log.WithField("pool", poolName)
	}
	return &LogMonitor{log: log}
}

func (m *LogMonitor) OnSubmit(queued int) {
	m.log.WithField("queued", queued).Trace("task submitted")
}

func (m *LogMonitor) OnDequeue(worker int, queued int) {
	m.log.WithFields(logrus.Fields{
		"worker": worker,
		"queued": queued,
	}).Trace("task dequeued")
}

func (m *LogMonitor) OnComplete(worker int, elapsed time.Duration) {
	m.log.WithFields(logrus.Fields{
		"worker":  worker,
		"elapsed": elapsed,
	}).Trace("task completed")
}

func (m *LogMonitor) OnPanic(worker int, recovered any, stack []byte) {
	m.log.WithFields(logrus.Fields{
		"worker": worker,
		"panic":  recovered,
		"stack":  string(stack),
	}).Error("task panicked")
}

func (m *LogMonitor) OnWorkerExit(worker int) {
	m.log.WithField("worker", worker).Debug("worker exited")
}
