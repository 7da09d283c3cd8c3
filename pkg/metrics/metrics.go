// Package metrics provides Prometheus metrics for migration runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MigrationRunsTotal counts finished runs by outcome.
	MigrationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "migration",
			Name:      "runs_total",
			Help:      "Total number of project migration runs by status",
		},
		[]string{"status"},
	)

	MigrationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clover",
			Subsystem: "migration",
			Name:      "duration_seconds",
			Help:      "Duration of project migration runs in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"status"},
	)

	MigrationAreasTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "migration",
			Name:      "areas_total",
			Help:      "Total number of area activities written by migrations",
		},
	)

	MigrationItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "migration",
			Name:      "items_total",
			Help:      "Total number of area activity items written by migrations",
		},
	)

	EmployeeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "migration",
			Name:      "employee_failures_total",
			Help:      "Total number of employees skipped because their upsert failed",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clover",
			Subsystem: "kafka",
			Name:      "events_published_total",
			Help:      "Total number of migration events published to Kafka",
		},
		[]string{"event_type", "status"},
	)
)

// ObserveRun records a finished run.
func ObserveRun(status string, elapsed time.Duration) {
	MigrationRunsTotal.WithLabelValues(status).Inc()
	MigrationDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func ObserveWritten(areas, items int) {
	MigrationAreasTotal.Add(float64(areas))
	MigrationItemsTotal.Add(float64(items))
}
