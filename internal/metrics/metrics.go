package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymfront_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymfront_booking_actions_total",
			Help: "Book and cancel actions by outcome",
		},
		[]string{"action", "outcome"},
	)

	RollbackRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymfront_rollback_refreshes_total",
			Help: "Full refetches triggered by a failed optimistic mutation",
		},
	)

	ScheduleRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymfront_schedule_refreshes_total",
			Help: "Full schedule refreshes from the gym API",
		},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymfront_notification_queue_length",
			Help: "Pending user notifications in the queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingAction(action, outcome string) {
	BookingActionsTotal.WithLabelValues(action, outcome).Inc()
}

func RecordRollbackRefresh() {
	RollbackRefreshesTotal.Inc()
}

func RecordScheduleRefresh() {
	ScheduleRefreshesTotal.Inc()
}
