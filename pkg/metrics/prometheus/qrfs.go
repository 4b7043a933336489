// Package prometheus is the concrete Prometheus implementation of
// metrics.QueueMetrics. It registers itself with pkg/metrics on import so
// callers only ever depend on the metrics package's interface.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/qrfs/pkg/metrics"
)

func init() {
	metrics.RegisterQRFSMetricsConstructor(newQRFSMetrics)
}

type qrfsMetrics struct {
	queueDepth         *prometheus.GaugeVec
	workerBusySeconds  *prometheus.HistogramVec
	operationsTotal    *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	bytesTransferred   *prometheus.CounterVec
	dedupHitsTotal     *prometheus.CounterVec
	reconcilerResidue  prometheus.Histogram
	reconcilerDuration prometheus.Histogram
}

func newQRFSMetrics() metrics.QueueMetrics {
	reg := metrics.GetRegistry()

	return &qrfsMetrics{
		queueDepth: promauto.With(reg).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "qrfs_queue_depth",
				Help: "Pending operations per queue (upload, download)",
			},
			[]string{"queue"},
		),
		workerBusySeconds: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qrfs_worker_busy_seconds",
				Help:    "Time a worker spent processing a single operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"queue"},
		),
		operationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrfs_operations_total",
				Help: "Total remote operations by kind and outcome",
			},
			[]string{"op", "status"},
		),
		operationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qrfs_operation_duration_seconds",
				Help:    "Remote operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		bytesTransferred: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrfs_bytes_transferred_total",
				Help: "Bytes transferred by operation kind",
			},
			[]string{"op"},
		),
		dedupHitsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qrfs_dedup_hits_total",
				Help: "Operations short-circuited by a dedup set",
			},
			[]string{"op"},
		),
		reconcilerResidue: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "qrfs_reconciler_residue_files",
				Help:    "Local files removed per reconcile pass",
				Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
			},
		),
		reconcilerDuration: promauto.With(reg).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "qrfs_reconciler_duration_seconds",
				Help:    "Duration of a reconcile pass",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *qrfsMetrics) ObserveQueueDepth(queue string, depth int) {
	m.queueDepth.WithLabelValues(queue).Set(float64(depth))
}

func (m *qrfsMetrics) ObserveWorkerBusy(queue string, d time.Duration) {
	m.workerBusySeconds.WithLabelValues(queue).Observe(d.Seconds())
}

func (m *qrfsMetrics) RecordOperation(op string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(op, status).Inc()
	m.operationDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (m *qrfsMetrics) RecordBytes(op string, bytes int64) {
	m.bytesTransferred.WithLabelValues(op).Add(float64(bytes))
}

func (m *qrfsMetrics) RecordDedupHit(op string) {
	m.dedupHitsTotal.WithLabelValues(op).Inc()
}

func (m *qrfsMetrics) RecordReconcilerResidue(count int, d time.Duration) {
	m.reconcilerResidue.Observe(float64(count))
	m.reconcilerDuration.Observe(d.Seconds())
}

var _ metrics.QueueMetrics = (*qrfsMetrics)(nil)
