// Package metrics defines and registers all custom Prometheus metrics for
// the notes API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes"

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "conflict", "rejected", or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of registration and login attempts, by result.",
	},
	[]string{"action", "result"},
)

// NoteOperationsTotal counts completed note operations.
// Label:
//   - operation: "list", "create", "update", or "delete"
var NoteOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "note_operations_total",
		Help:      "Total number of successful note operations, by operation.",
	},
	[]string{"operation"},
)

// ActivityQueueDepth tracks the number of entries waiting in each activity
// worker channel.
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of entries pending in each activity worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts activity-log entries that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity-log entries that failed to persist.",
	},
	[]string{"reason"},
)
