package convertors_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/convertors"
	"github.com/notifique/alert/internal/dto"
	"github.com/notifique/alert/internal/testutils"
)

func TestMakeCatalogResp(t *testing.T) {
	resp := convertors.MakeCatalogResp(testutils.MakeCatalog(t))

	assert.Equal(t, []dto.BackendResp{
		{Id: "email", Title: "E-mail"},
		{Id: "sms", Title: "SMS"},
	}, resp.Backends)

	assert.Len(t, resp.AlertTypes, 3)
	assert.Equal(t, map[string]bool{"email": true, "sms": false}, resp.AlertTypes[0].Defaults)
	assert.Equal(t, map[string]bool{"email": false, "sms": false}, resp.AlertTypes[1].Defaults)
	assert.Equal(t, map[string]bool{"email": true, "sms": true}, resp.AlertTypes[2].Defaults)
}

func TestMakeUserPreferencesResp(t *testing.T) {
	catalog := testutils.MakeCatalog(t)

	prefs := alert.Prefs{}
	for _, k := range catalog.Keys() {
		prefs[k] = false
	}

	prefs[alert.PrefKey{AlertType: testutils.SecurityAlert, Backend: testutils.SMSBackend}] = true
	prefs[alert.PrefKey{AlertType: "retired", Backend: testutils.EmailBackend}] = true

	resp := convertors.MakeUserPreferencesResp(alert.User{ID: "1"}, catalog, prefs)

	assert.True(t, resp.Authenticated)
	assert.Len(t, resp.Preferences, len(catalog.Keys())+1)
	assert.Equal(t, dto.PreferenceResp{AlertType: "comment", Backend: "email"}, resp.Preferences[0])
	assert.Equal(t, dto.PreferenceResp{AlertType: "security", Backend: "sms", Enabled: true}, resp.Preferences[5])
	assert.Equal(t, dto.PreferenceResp{AlertType: "retired", Backend: "email", Enabled: true}, resp.Preferences[6])
}

func TestMakeAlertUsersAndRecipients(t *testing.T) {
	userId := "1"

	users := convertors.MakeAlertUsers([]dto.AlertUserReq{
		{UserId: &userId, Email: "one@example.com"},
		{Email: "guest@example.com"},
	})

	assert.Equal(t, "1", users[0].User.ID)
	assert.Nil(t, users[1].User)

	resp := convertors.MakeRecipientsResp(testutils.CommentAlert, []alert.Recipient{
		{AlertUser: users[0], Backend: alert.Backend{ID: testutils.EmailBackend}},
		{AlertUser: users[1], Backend: alert.Backend{ID: testutils.SMSBackend}},
	})

	assert.Equal(t, "comment", resp.AlertType)
	assert.Equal(t, &userId, resp.Recipients[0].UserId)
	assert.Equal(t, "email", resp.Recipients[0].Backend)
	assert.Nil(t, resp.Recipients[1].UserId)
	assert.Equal(t, "guest@example.com", resp.Recipients[1].Email)
}

func TestMakeAlertDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	req := dto.AlertReq{UserId: "1", AlertType: "comment", Backend: "email", Title: "t", Body: "b"}

	assert.Equal(t, now, convertors.MakeAlert(req, now).When)

	req.When = &later
	assert.Equal(t, later, convertors.MakeAlert(req, now).When)
}
