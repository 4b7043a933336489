package metrics

import "time"

// QueueMetrics records QRFS coordinator observability: per-queue depth,
// worker busy time, operation outcomes, dedup hits, and reconciler residue.
// A nil QueueMetrics disables instrumentation: the package-level helpers
// below check for nil before calling a method, so a disabled-metrics QRFS
// instance pays no cost beyond that check.
type QueueMetrics interface {
	ObserveQueueDepth(queue string, depth int)
	ObserveWorkerBusy(queue string, d time.Duration)
	RecordOperation(op string, d time.Duration, err error)
	RecordBytes(op string, bytes int64)
	RecordDedupHit(op string)
	RecordReconcilerResidue(count int, d time.Duration)
}

// NewQRFSMetrics creates a Prometheus-backed QueueMetrics, or nil if metrics
// are disabled. Callers should pass the result straight to the coordinator;
// a nil QueueMetrics is the zero-overhead default.
func NewQRFSMetrics() QueueMetrics {
	if !IsEnabled() {
		return nil
	}
	return newPrometheusQRFSMetrics()
}

// newPrometheusQRFSMetrics is installed by pkg/metrics/prometheus/qrfs.go's
// init(). The indirection avoids an import cycle between this package and
// its Prometheus implementation.
var newPrometheusQRFSMetrics func() QueueMetrics

// RegisterQRFSMetricsConstructor registers the Prometheus QueueMetrics
// constructor. Called by pkg/metrics/prometheus during package init.
func RegisterQRFSMetricsConstructor(constructor func() QueueMetrics) {
	newPrometheusQRFSMetrics = constructor
}

// ObserveQueueDepth records the pending-operation count for a queue.
func ObserveQueueDepth(m QueueMetrics, queue string, depth int) {
	if m != nil {
		m.ObserveQueueDepth(queue, depth)
	}
}

// ObserveWorkerBusy records time a worker spent on a single operation.
func ObserveWorkerBusy(m QueueMetrics, queue string, d time.Duration) {
	if m != nil {
		m.ObserveWorkerBusy(queue, d)
	}
}

// RecordOperation records the outcome and duration of a remote operation.
func RecordOperation(m QueueMetrics, op string, d time.Duration, err error) {
	if m != nil {
		m.RecordOperation(op, d, err)
	}
}

// RecordBytes records bytes transferred for an operation kind.
func RecordBytes(m QueueMetrics, op string, bytes int64) {
	if m != nil && bytes > 0 {
		m.RecordBytes(op, bytes)
	}
}

// RecordDedupHit records an operation short-circuited by a dedup set.
func RecordDedupHit(m QueueMetrics, op string) {
	if m != nil {
		m.RecordDedupHit(op)
	}
}

// RecordReconcilerResidue records how many local files a reconcile pass
// removed and how long the pass took.
func RecordReconcilerResidue(m QueueMetrics, count int, d time.Duration) {
	if m != nil {
		m.RecordReconcilerResidue(count, d)
	}
}
