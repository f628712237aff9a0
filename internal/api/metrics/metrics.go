// Package metrics defines and registers all custom Prometheus metrics for
// the attendance API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// EntriesRecordedTotal counts successfully persisted attendance entries.
// Labels:
//   - kind: "check-in" or "check-out"
//   - location: the location code the entry was tagged with
var EntriesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_recorded_total",
		Help:      "Total number of attendance entries successfully recorded.",
	},
	[]string{"kind", "location"},
)

// EntriesRejectedTotal counts entries rejected before persistence.
// Label:
//   - reason: short description of the rejection (e.g. "invalid_location", "bad_payload")
var EntriesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_rejected_total",
		Help:      "Total number of attendance entries rejected before being stored.",
	},
	[]string{"reason"},
)

// SummariesComputedTotal counts day-summary computations.
var SummariesComputedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summaries_computed_total",
		Help:      "Total number of daily wage summaries computed.",
	},
)

// QRRenderedTotal counts QR code images served to admins.
// Label:
//   - location: the encoded location code
var QRRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_rendered_total",
		Help:      "Total number of QR code images served, by location code.",
	},
	[]string{"location"},
)
