package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/metrics"
)

func TestPrometheusMetrics(t *testing.T) {

	m := metrics.NewPrometheusMetrics()

	t.Run("Records resolved recipients per backend", func(t *testing.T) {
		email := metrics.RecipientsResolved.WithLabelValues("metrics-test", "email")
		before := testutil.ToFloat64(email)

		m.RecordRecipients("metrics-test", []alert.Recipient{
			{Backend: alert.Backend{ID: "email"}},
			{Backend: alert.Backend{ID: "email"}},
			{Backend: alert.Backend{ID: "sms"}},
		})

		assert.Equal(t, before+2, testutil.ToFloat64(email))
	})

	t.Run("Records pending gauge", func(t *testing.T) {
		m.RecordPending(7)
		assert.Equal(t, float64(7), testutil.ToFloat64(metrics.PendingAlerts))
	})

	t.Run("Records preference lookups", func(t *testing.T) {
		counter := metrics.PreferenceLookups.WithLabelValues(metrics.LookupAnonymous)
		before := testutil.ToFloat64(counter)

		m.RecordPreferenceLookup(metrics.LookupAnonymous)

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}
