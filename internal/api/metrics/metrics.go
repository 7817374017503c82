// Package metrics defines the custom Prometheus metrics of the planner API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on import and
// exposed on /metrics next to the HTTP metrics of echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planner"

// ── AI metrics ────────────────────────────────────────────────────────────────

// AIRequestsTotal counts calls to the AI collaborator.
// Labels:
//   - module: planner module of the request (e.g. "budget", "legal")
//   - outcome: "ok", "unavailable", "malformed" or "error"
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI collaborator calls, by module and outcome.",
	},
	[]string{"module", "outcome"},
)

// AIRequestDuration measures the round trip to the AI collaborator.
// Label:
//   - module: planner module of the request
var AIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of AI collaborator calls.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40},
	},
	[]string{"module"},
)

// AICacheTotal counts response cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var AICacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_cache_total",
		Help:      "Total number of AI response cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsWrittenTotal counts successful writes to the record store.
// Labels:
//   - entity: "calendar_event", "coworking_space", "budget_entry", "preferences", "user"
//   - op: "create", "update", "delete" or "upsert"
var RecordsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_written_total",
		Help:      "Total number of records written, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// ── Conversation recorder metrics ─────────────────────────────────────────────

// ConversationQueueDepth tracks the exchanges waiting in each recorder worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ConversationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "conversation_queue_depth",
		Help:      "Current number of AI exchanges pending in each recorder worker channel.",
	},
	[]string{"worker_id"},
)

// ConversationDroppedTotal counts exchanges discarded because a worker queue was full.
var ConversationDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversation_dropped_total",
		Help:      "Total number of AI exchanges dropped because the recorder queue was full.",
	},
)

// ConversationErrorsTotal counts exchanges the recorder failed to persist.
var ConversationErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversation_errors_total",
		Help:      "Total number of AI exchanges that could not be persisted.",
	},
)
