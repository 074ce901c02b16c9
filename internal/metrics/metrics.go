package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var once sync.Once

var (
	BookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "bookings_created_total",
			Help:      "Count of bookings successfully created.",
		},
	)

	BookingsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "bookings_completed_total",
			Help:      "Count of bookings completed (car returned).",
		},
	)

	BookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "bookings_cancelled_total",
			Help:      "Count of bookings cancelled.",
		},
	)

	ScheduleConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "schedule_conflicts_total",
			Help:      "Count of placements rejected due to an overlapping booking.",
		},
	)

	SettlementsComputed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "settlements_computed_total",
			Help:      "Count of partner settlements computed.",
		},
	)

	InvoicesAggregated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rentcar",
			Name:      "invoices_aggregated_total",
			Help:      "Count of collective invoices issued.",
		},
	)
)

// Register registers all counters with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			BookingsCreated,
			BookingsCompleted,
			BookingsCancelled,
			ScheduleConflicts,
			SettlementsComputed,
			InvoicesAggregated,
		)
	})
}
