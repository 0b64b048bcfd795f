package convertors

import (
	"cmp"
	"slices"
	"time"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/dto"
)

func MakeCatalogResp(catalog *alert.Catalog) dto.CatalogResp {

	backends := catalog.Backends()
	resp := dto.CatalogResp{
		AlertTypes: make([]dto.AlertTypeResp, 0),
		Backends:   make([]dto.BackendResp, 0, len(backends)),
	}

	for _, b := range backends {
		resp.Backends = append(resp.Backends, dto.BackendResp{
			Id:    string(b.ID),
			Title: b.Title,
		})
	}

	for _, t := range catalog.AlertTypes() {
		defaults := make(map[string]bool, len(backends))

		for _, b := range backends {
			defaults[string(b.ID)] = t.GetDefault(b.ID)
		}

		resp.AlertTypes = append(resp.AlertTypes, dto.AlertTypeResp{
			Id:          string(t.ID),
			Title:       t.Title,
			Description: t.Description,
			Defaults:    defaults,
		})
	}

	return resp
}

// MakeUserPreferencesResp lists prefs in catalog order. Stored overrides
// for pairs that left the catalog come last, sorted by type and backend.
func MakeUserPreferencesResp(user alert.User, catalog *alert.Catalog, prefs alert.Prefs) dto.UserPreferencesResp {

	resp := dto.UserPreferencesResp{
		Authenticated: user.IsAuthenticated(),
		Preferences:   make([]dto.PreferenceResp, 0, len(prefs)),
	}

	seen := make(map[alert.PrefKey]struct{}, len(prefs))

	for _, k := range catalog.Keys() {
		enabled, ok := prefs[k]

		if !ok {
			continue
		}

		seen[k] = struct{}{}
		resp.Preferences = append(resp.Preferences, makePreferenceResp(k, enabled))
	}

	extra := make([]alert.PrefKey, 0)

	for k := range prefs {
		if _, ok := seen[k]; !ok {
			extra = append(extra, k)
		}
	}

	slices.SortFunc(extra, func(a, b alert.PrefKey) int {
		return cmp.Or(
			cmp.Compare(a.AlertType, b.AlertType),
			cmp.Compare(a.Backend, b.Backend),
		)
	})

	for _, k := range extra {
		resp.Preferences = append(resp.Preferences, makePreferenceResp(k, prefs[k]))
	}

	return resp
}

func makePreferenceResp(k alert.PrefKey, enabled bool) dto.PreferenceResp {
	return dto.PreferenceResp{
		AlertType: string(k.AlertType),
		Backend:   string(k.Backend),
		Enabled:   enabled,
	}
}

func MakePreference(userId string, req dto.PreferenceReq) alert.Preference {
	return alert.Preference{
		UserID:    userId,
		AlertType: alert.AlertTypeID(req.AlertType),
		Backend:   alert.BackendID(req.Backend),
		Enabled:   *req.Enabled,
	}
}

func MakeAlertUsers(users []dto.AlertUserReq) []alert.AlertUser {

	alertUsers := make([]alert.AlertUser, 0, len(users))

	for _, u := range users {
		au := alert.AlertUser{Email: u.Email}

		if u.UserId != nil {
			au.User = &alert.User{ID: *u.UserId}
		}

		alertUsers = append(alertUsers, au)
	}

	return alertUsers
}

func MakeRecipientsResp(alertType alert.AlertTypeID, recipients []alert.Recipient) dto.RecipientsResp {

	resp := dto.RecipientsResp{
		AlertType:  string(alertType),
		Recipients: make([]dto.RecipientResp, 0, len(recipients)),
	}

	for _, r := range recipients {
		rr := dto.RecipientResp{
			Email:   r.AlertUser.Email,
			Backend: string(r.Backend.ID),
		}

		if r.AlertUser.User != nil {
			id := r.AlertUser.User.ID
			rr.UserId = &id
		}

		resp.Recipients = append(resp.Recipients, rr)
	}

	return resp
}

// MakeAlert schedules the alert at now when the request has no date.
func MakeAlert(req dto.AlertReq, now time.Time) alert.Alert {

	when := now

	if req.When != nil {
		when = *req.When
	}

	return alert.Alert{
		UserID:    req.UserId,
		AlertType: alert.AlertTypeID(req.AlertType),
		Backend:   alert.BackendID(req.Backend),
		Title:     req.Title,
		Body:      req.Body,
		When:      when.UTC(),
	}
}

func MakeAlertResp(a alert.Alert) dto.AlertResp {
	return dto.AlertResp{
		Id:        a.ID,
		UserId:    a.UserID,
		AlertType: string(a.AlertType),
		Backend:   string(a.Backend),
		Title:     a.Title,
		Body:      a.Body,
		When:      a.When,
		IsSent:    a.IsSent,
		SentAt:    a.SentAt,
	}
}

func MakeAlertsResp(alerts []alert.Alert) dto.AlertsResp {

	resp := dto.AlertsResp{Alerts: make([]dto.AlertResp, 0, len(alerts))}

	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, MakeAlertResp(a))
	}

	return resp
}
