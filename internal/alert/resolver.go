package alert

import (
	"context"
	"fmt"
)

// PreferenceStore loads explicit preference overrides.
type PreferenceStore interface {
	GetUserPreferences(ctx context.Context, userId string) ([]Preference, error)
	GetAlertTypePreferences(ctx context.Context, alertType AlertTypeID, userIds []string) ([]Preference, error)
}

type Resolver struct {
	store   PreferenceStore
	catalog *Catalog
}

func NewResolver(store PreferenceStore, catalog *Catalog) *Resolver {
	return &Resolver{store: store, catalog: catalog}
}

func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// GetUserPrefs returns the resolved preference of user for every
// (alert type, backend) pair of the catalog. Anonymous users never receive
// alerts, so every pair resolves to false for them.
func (r *Resolver) GetUserPrefs(ctx context.Context, user User) (Prefs, error) {

	keys := r.catalog.Keys()

	if !user.IsAuthenticated() {
		prefs := make(Prefs, len(keys))

		for _, k := range keys {
			prefs[k] = false
		}

		return prefs, nil
	}

	overrides, err := r.store.GetUserPreferences(ctx, user.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to get preferences of user %s - %w", user.ID, err)
	}

	prefs := make(Prefs, len(keys))

	for _, p := range overrides {
		prefs[PrefKey{AlertType: p.AlertType, Backend: p.Backend}] = p.Enabled
	}

	for _, t := range r.catalog.types {
		for _, b := range r.catalog.backends {
			k := PrefKey{AlertType: t.ID, Backend: b.ID}

			if _, ok := prefs[k]; !ok {
				prefs[k] = t.GetDefault(b.ID)
			}
		}
	}

	return prefs, nil
}

// GetRecipientsForNotice looks the alert type up by id and resolves its
// recipients among alertUsers. An unknown id fails even when alertUsers is
// empty.
func (r *Resolver) GetRecipientsForNotice(ctx context.Context, alertType AlertTypeID, alertUsers []AlertUser) ([]Recipient, error) {

	t, err := r.catalog.AlertType(alertType)

	if err != nil {
		return nil, err
	}

	return r.GetRecipientsForAlertType(ctx, t, alertUsers)
}

// GetRecipientsForAlertType returns the (alert user, backend) pairs whose
// resolved preference for alertType is true, ordered by alertUsers and then
// by catalog backend order.
//
// Each override is bound to the alert users wrapping the override's own
// user id. Overrides never leak to other alert users of the same call.
func (r *Resolver) GetRecipientsForAlertType(ctx context.Context, alertType AlertType, alertUsers []AlertUser) ([]Recipient, error) {

	if len(alertUsers) == 0 {
		return []Recipient{}, nil
	}

	userIds := make([]string, 0, len(alertUsers))
	seen := make(map[string]struct{}, len(alertUsers))

	for _, au := range alertUsers {
		id, ok := au.userID()

		if !ok {
			continue
		}

		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			userIds = append(userIds, id)
		}
	}

	// user id -> backend -> preference
	overrides := make(map[string]map[BackendID]bool, len(userIds))

	if len(userIds) != 0 {
		stored, err := r.store.GetAlertTypePreferences(ctx, alertType.ID, userIds)

		if err != nil {
			return nil, fmt.Errorf("failed to get preferences for alert type %s - %w", alertType.ID, err)
		}

		for _, p := range stored {
			if p.AlertType != alertType.ID {
				continue
			}

			if _, ok := overrides[p.UserID]; !ok {
				overrides[p.UserID] = make(map[BackendID]bool)
			}

			overrides[p.UserID][p.Backend] = p.Enabled
		}
	}

	recipients := make([]Recipient, 0, len(alertUsers))

	for _, au := range alertUsers {
		id, _ := au.userID()
		userOverrides := overrides[id]

		for _, b := range r.catalog.backends {
			pref, ok := userOverrides[b.ID]

			if !ok {
				pref = alertType.GetDefault(b.ID)
			}

			if pref {
				recipients = append(recipients, Recipient{AlertUser: au, Backend: b})
			}
		}
	}

	return recipients, nil
}
