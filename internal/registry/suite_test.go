package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/controllers"
	"github.com/notifique/alert/internal/testutils"
	r "github.com/notifique/alert/internal/testutils/registry"
)

type PreferenceRegistryTester interface {
	controllers.PreferenceRegistry
	r.ContainerTester
}

type AlertRegistryTester interface {
	controllers.AlertRegistry
	r.ContainerTester
}

func testPreferences(ctx context.Context, t *testing.T, prt PreferenceRegistryTester) {

	alice, bob, carol := "alice", "bob", "carol"

	pref := func(userId string, alertType alert.AlertTypeID, backend alert.BackendID, enabled bool) alert.Preference {
		return alert.Preference{
			UserID:    userId,
			AlertType: alertType,
			Backend:   backend,
			Enabled:   enabled,
		}
	}

	t.Run("No preferences stored", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		prefs, err := prt.GetUserPreferences(ctx, alice)
		require.NoError(t, err)
		assert.Empty(t, prefs)
	})

	t.Run("Set and retrieve preferences", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		stored := []alert.Preference{
			pref(alice, testutils.CommentAlert, testutils.EmailBackend, false),
			pref(alice, testutils.CommentAlert, testutils.SMSBackend, true),
			pref(alice, testutils.SecurityAlert, testutils.SMSBackend, false),
			pref(bob, testutils.CommentAlert, testutils.EmailBackend, true),
		}

		for _, p := range stored {
			require.NoError(t, prt.SetPreference(ctx, p))
		}

		prefs, err := prt.GetUserPreferences(ctx, alice)
		require.NoError(t, err)
		assert.ElementsMatch(t, stored[:3], prefs)

		prefs, err = prt.GetUserPreferences(ctx, bob)
		require.NoError(t, err)
		assert.ElementsMatch(t, stored[3:], prefs)
	})

	t.Run("Set overwrites the previous value", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		require.NoError(t, prt.SetPreference(ctx, pref(alice, testutils.CommentAlert, testutils.EmailBackend, false)))
		require.NoError(t, prt.SetPreference(ctx, pref(alice, testutils.CommentAlert, testutils.EmailBackend, true)))

		prefs, err := prt.GetUserPreferences(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []alert.Preference{
			pref(alice, testutils.CommentAlert, testutils.EmailBackend, true),
		}, prefs)
	})

	t.Run("Alert type preferences of a set of users", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		stored := []alert.Preference{
			pref(alice, testutils.CommentAlert, testutils.EmailBackend, false),
			pref(alice, testutils.SecurityAlert, testutils.EmailBackend, false),
			pref(bob, testutils.CommentAlert, testutils.SMSBackend, true),
			pref(carol, testutils.CommentAlert, testutils.SMSBackend, true),
		}

		for _, p := range stored {
			require.NoError(t, prt.SetPreference(ctx, p))
		}

		prefs, err := prt.GetAlertTypePreferences(ctx, testutils.CommentAlert, []string{alice, bob, "nobody"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []alert.Preference{stored[0], stored[2]}, prefs)

		prefs, err = prt.GetAlertTypePreferences(ctx, testutils.CommentAlert, []string{})
		require.NoError(t, err)
		assert.Empty(t, prefs)

		prefs, err = prt.GetAlertTypePreferences(ctx, testutils.NewsletterAlert, []string{alice, bob, carol})
		require.NoError(t, err)
		assert.Empty(t, prefs)
	})

	t.Run("Alert type prefix does not match other types", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		longer := pref(alice, alert.AlertTypeID("comment_reply"), testutils.EmailBackend, true)
		require.NoError(t, prt.SetPreference(ctx, longer))

		prefs, err := prt.GetAlertTypePreferences(ctx, testutils.CommentAlert, []string{alice})
		require.NoError(t, err)
		assert.Empty(t, prefs)
	})

	t.Run("Delete preference", func(t *testing.T) {
		r.Clear(ctx, t, prt)

		kept := pref(alice, testutils.CommentAlert, testutils.EmailBackend, false)
		deleted := pref(alice, testutils.CommentAlert, testutils.SMSBackend, true)

		require.NoError(t, prt.SetPreference(ctx, kept))
		require.NoError(t, prt.SetPreference(ctx, deleted))

		err := prt.DeletePreference(ctx, alice, deleted.AlertType, deleted.Backend)
		require.NoError(t, err)

		prefs, err := prt.GetUserPreferences(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, []alert.Preference{kept}, prefs)

		err = prt.DeletePreference(ctx, alice, deleted.AlertType, deleted.Backend)
		assert.NoError(t, err)
	})
}

func testAlerts(ctx context.Context, t *testing.T, art AlertRegistryTester) {

	userId := "1234"
	now := time.Now().UTC().Truncate(time.Millisecond)

	schedule := func(t *testing.T) []alert.Alert {
		toCreate := testutils.MakeTestAlerts(3, userId, now.Add(-3*time.Minute))
		toCreate = append(toCreate, alert.Alert{
			UserID:    userId,
			AlertType: testutils.SecurityAlert,
			Backend:   testutils.SMSBackend,
			Title:     "Later",
			Body:      "Scheduled for later",
			When:      now.Add(time.Hour),
		})

		created, err := art.CreateAlerts(ctx, toCreate)
		require.NoError(t, err)
		require.Len(t, created, len(toCreate))

		return created
	}

	ids := func(alerts []alert.Alert) []string {
		res := make([]string, 0, len(alerts))
		for _, a := range alerts {
			res = append(res, a.ID)
		}
		return res
	}

	t.Run("Create alerts", func(t *testing.T) {
		r.Clear(ctx, t, art)

		created := schedule(t)
		seen := make(map[string]struct{})

		for _, a := range created {
			assert.NotEmpty(t, a.ID)
			assert.False(t, a.IsSent)
			assert.Nil(t, a.SentAt)
			seen[a.ID] = struct{}{}
		}

		assert.Len(t, seen, len(created))
	})

	t.Run("Pending alerts in schedule order", func(t *testing.T) {
		r.Clear(ctx, t, art)

		created := schedule(t)

		pending, err := art.GetPendingAlerts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, ids(created[:3]), ids(pending))

		for i, a := range pending {
			assert.True(t, created[i].When.Equal(a.When))
			assert.Equal(t, created[i].Title, a.Title)
			assert.Equal(t, created[i].Body, a.Body)
			assert.Equal(t, created[i].AlertType, a.AlertType)
			assert.Equal(t, created[i].Backend, a.Backend)
			assert.Equal(t, userId, a.UserID)
		}

		pending, err = art.GetPendingAlerts(ctx, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, ids(created), ids(pending))

		pending, err = art.GetPendingAlerts(ctx, now.Add(-time.Hour))
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Pending includes alerts due exactly now", func(t *testing.T) {
		r.Clear(ctx, t, art)

		created := schedule(t)
		due := created[0].When

		pending, err := art.GetPendingAlerts(ctx, due)
		require.NoError(t, err)
		assert.Equal(t, ids(created[:1]), ids(pending))

		pending, err = art.GetPendingAlerts(ctx, due.Add(-time.Millisecond))
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Schedule out of range is rejected", func(t *testing.T) {
		r.Clear(ctx, t, art)

		farFuture := testutils.MakeTestAlerts(1, userId, time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC))

		_, err := art.CreateAlerts(ctx, farFuture)
		assert.ErrorAs(t, err, &internal.InvalidSchedule{})

		pending, err := art.GetPendingAlerts(ctx, now)
		require.NoError(t, err)
		assert.Empty(t, pending)

		pending, err = art.GetPendingAlerts(ctx, time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("Mark sent", func(t *testing.T) {
		r.Clear(ctx, t, art)

		created := schedule(t)

		err := art.MarkSent(ctx, created[1].ID, now)
		require.NoError(t, err)

		pending, err := art.GetPendingAlerts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{created[0].ID, created[2].ID}, ids(pending))
	})

	t.Run("Mark sent unknown alert", func(t *testing.T) {
		r.Clear(ctx, t, art)

		err := art.MarkSent(ctx, uuid.NewString(), now)
		assert.ErrorAs(t, err, &internal.EntityNotFound{})
	})
}
