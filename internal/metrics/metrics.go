package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gst_server"

// Import outcomes.
const (
	OutcomeImported = "imported"
	OutcomeSkipped  = "skipped"
	OutcomeLocked   = "locked"
)

// Write outcomes for actions run by the operator.
const (
	WriteCommitted  = "committed"
	WriteRolledBack = "rolled_back"
	WriteFailed     = "failed"
	WriteAbandoned  = "abandoned"
)

var (
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bank_import_rows_total",
		Help:      "Bank import rows processed, by outcome.",
	}, []string{"outcome"})

	PeriodLockRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "period_lock_rejections_total",
		Help:      "Writes rejected because the GST period was filed.",
	}, []string{"operation"})

	PeriodStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "period_status_changes_total",
		Help:      "GST period status transitions, by target status.",
	}, []string{"status"})

	OperatorQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "operator_queue_depth",
		Help:      "Writes waiting for an operator worker.",
	})

	OperatorWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operator_writes_total",
		Help:      "Actions run by the operator, by action and outcome.",
	}, []string{"action", "outcome"})

	OperatorWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operator_write_duration_seconds",
		Help:      "Time from opening the database transaction to commit or rollback.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
)

// RecordImport adds one import result to ImportRows.
func RecordImport(imported, skipped, locked int) {
	ImportRows.WithLabelValues(OutcomeImported).Add(float64(imported))
	ImportRows.WithLabelValues(OutcomeSkipped).Add(float64(skipped))
	ImportRows.WithLabelValues(OutcomeLocked).Add(float64(locked))
}

// RecordWrite counts one operator action. Abandoned actions never opened a
// transaction and are not timed.
func RecordWrite(action, outcome string, elapsed time.Duration) {
	OperatorWrites.WithLabelValues(action, outcome).Inc()
	if outcome != WriteAbandoned {
		OperatorWriteDuration.WithLabelValues(action).Observe(elapsed.Seconds())
	}
}
