package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/notifique/alert/internal/alert"
)

const (
	LookupAnonymous = "anonymous"
	LookupResolved  = "resolved"
	LookupCached    = "cached"
)

var (
	RecipientsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alerts_recipients_resolved_total",
		Help: "Total number of (alert user, backend) pairs selected to receive an alert.",
	}, []string{"alert_type", "backend"})

	PreferenceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alerts_preference_lookups_total",
		Help: "Total number of user preference lookups by outcome.",
	}, []string{"outcome"})

	PendingAlerts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "alerts_pending",
		Help: "Number of pending alerts returned by the last pending query.",
	})

	AlertsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alerts_scheduled_total",
		Help: "Total number of alert records scheduled.",
	})
)

type PrometheusMetrics struct{}

func (m *PrometheusMetrics) RecordRecipients(alertType alert.AlertTypeID, recipients []alert.Recipient) {
	for _, r := range recipients {
		RecipientsResolved.WithLabelValues(string(alertType), string(r.Backend.ID)).Inc()
	}
}

func (m *PrometheusMetrics) RecordPreferenceLookup(outcome string) {
	PreferenceLookups.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordPending(count int) {
	PendingAlerts.Set(float64(count))
}

func (m *PrometheusMetrics) RecordScheduled(count int) {
	AlertsScheduled.Add(float64(count))
}

func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{}
}
