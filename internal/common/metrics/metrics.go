// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total number of signup attempts by result",
		},
		[]string{"result"},
	)

	UnregistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total number of unregister attempts by result",
		},
		[]string{"result"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"route", "method", "status"},
	)

	ActivityParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_participants",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)
