package testutils

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notifique/alert/internal/alert"
)

const (
	EmailBackend alert.BackendID = "email"
	SMSBackend   alert.BackendID = "sms"

	CommentAlert    alert.AlertTypeID = "comment"
	NewsletterAlert alert.AlertTypeID = "newsletter"
	SecurityAlert   alert.AlertTypeID = "security"
)

// MakeCatalog builds the catalog shared by the tests:
//   - comment: email only
//   - newsletter: nothing
//   - security: every backend
func MakeCatalog(t *testing.T) *alert.Catalog {

	backends := []alert.Backend{
		{ID: EmailBackend, Title: "E-mail"},
		{ID: SMSBackend, Title: "SMS"},
	}

	types := []alert.AlertType{
		{
			ID:       CommentAlert,
			Title:    "New comment",
			Defaults: map[alert.BackendID]bool{EmailBackend: true},
		},
		{
			ID:    NewsletterAlert,
			Title: "Newsletter",
		},
		{
			ID:      SecurityAlert,
			Title:   "Security notice",
			Default: true,
		},
	}

	catalog, err := alert.NewCatalog(types, backends)
	require.NoError(t, err)

	return catalog
}

func MakeTestAlerts(numAlerts int, userId string, when time.Time) []alert.Alert {

	alerts := make([]alert.Alert, 0, numAlerts)

	for i := range numAlerts {
		a := alert.Alert{
			UserID:    userId,
			AlertType: CommentAlert,
			Backend:   EmailBackend,
			Title:     fmt.Sprintf("Test title %d", i),
			Body:      fmt.Sprintf("Test body %d", i),
			When:      when.Add(time.Duration(i) * time.Minute),
		}

		alerts = append(alerts, a)
	}

	return alerts
}

func SortAlerts(alerts []alert.Alert) {
	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].ID < alerts[j].ID
	})
}

func MakeStrWithSize(size int) string {
	str, i := "", 0

	for i < size {
		str += "+"
		i += 1
	}

	return str
}

func StrPtr(s string) *string {
	return &s
}
