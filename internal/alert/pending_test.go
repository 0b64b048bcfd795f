package alert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal/alert"
)

func TestPending(t *testing.T) {

	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	sentAt := now.Add(-time.Hour)

	due := alert.Alert{ID: "due", When: now.Add(-time.Minute)}
	dueNow := alert.Alert{ID: "due-now", When: now}
	future := alert.Alert{ID: "future", When: now.Add(time.Second)}
	sent := alert.Alert{ID: "sent", When: now.Add(-time.Hour), IsSent: true, SentAt: &sentAt}
	sentFuture := alert.Alert{ID: "sent-future", When: now.Add(time.Hour), IsSent: true}

	tests := []struct {
		name     string
		alerts   []alert.Alert
		expected []alert.Alert
	}{
		{
			name:     "Empty collection",
			alerts:   []alert.Alert{},
			expected: []alert.Alert{},
		},
		{
			name:     "Scheduled at or before now and unsent",
			alerts:   []alert.Alert{due, dueNow},
			expected: []alert.Alert{due, dueNow},
		},
		{
			name:     "Scheduled in the future",
			alerts:   []alert.Alert{future},
			expected: []alert.Alert{},
		},
		{
			name:     "Already sent",
			alerts:   []alert.Alert{sent, sentFuture},
			expected: []alert.Alert{},
		},
		{
			name:     "Mixed - Order preserved",
			alerts:   []alert.Alert{future, dueNow, sent, due, sentFuture},
			expected: []alert.Alert{dueNow, due},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending := alert.Pending(tt.alerts, now)
			assert.Equal(t, tt.expected, pending)

			for _, a := range tt.alerts {
				_, included := find(pending, a.ID)
				assert.Equal(t, !a.IsSent && !a.When.After(now), included, a.ID)
			}
		})
	}
}

func TestPendingNowUsesCallTime(t *testing.T) {
	soon := alert.Alert{ID: "soon", When: time.Now().Add(50 * time.Millisecond)}

	assert.Empty(t, alert.PendingNow([]alert.Alert{soon}))

	time.Sleep(100 * time.Millisecond)

	assert.Len(t, alert.PendingNow([]alert.Alert{soon}), 1)
}

func find(alerts []alert.Alert, id string) (alert.Alert, bool) {
	for _, a := range alerts {
		if a.ID == id {
			return a, true
		}
	}

	return alert.Alert{}, false
}
