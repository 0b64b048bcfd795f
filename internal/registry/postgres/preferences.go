package postgresregistry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/notifique/alert/internal/alert"
)

type preference struct {
	UserId     string `db:"user_id"`
	AlertType  string `db:"alert_type"`
	Backend    string `db:"backend"`
	Preference bool   `db:"preference"`
}

func (p *preference) toAlert() alert.Preference {
	return alert.Preference{
		UserID:    p.UserId,
		AlertType: alert.AlertTypeID(p.AlertType),
		Backend:   alert.BackendID(p.Backend),
		Enabled:   p.Preference,
	}
}

const GetUserPreferences = `
SELECT
	user_id,
	alert_type,
	backend,
	preference
FROM
	alert_preferences
WHERE
	user_id = @userId;
`

const GetAlertTypePreferences = `
SELECT
	user_id,
	alert_type,
	backend,
	preference
FROM
	alert_preferences
WHERE
	alert_type = @alertType AND
	user_id = ANY(@userIds);
`

const UpsertPreference = `
INSERT INTO alert_preferences (
	user_id,
	alert_type,
	backend,
	preference,
	updated_at
) VALUES (
	@userId,
	@alertType,
	@backend,
	@preference,
	NOW()
) ON CONFLICT
	(user_id, alert_type, backend)
DO UPDATE SET
	preference = EXCLUDED.preference,
	updated_at = EXCLUDED.updated_at;
`

const DeletePreference = `
DELETE FROM
	alert_preferences
WHERE
	user_id = @userId AND
	alert_type = @alertType AND
	backend = @backend;
`

func (ps *Registry) queryPreferences(ctx context.Context, query string, args pgx.NamedArgs) ([]alert.Preference, error) {

	rows, err := ps.conn.Query(ctx, query, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	stored, err := pgx.CollectRows(rows, pgx.RowToStructByName[preference])

	if err != nil {
		return nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	prefs := make([]alert.Preference, 0, len(stored))

	for _, p := range stored {
		prefs = append(prefs, p.toAlert())
	}

	return prefs, nil
}

func (ps *Registry) GetUserPreferences(ctx context.Context, userId string) ([]alert.Preference, error) {
	args := pgx.NamedArgs{"userId": userId}
	return ps.queryPreferences(ctx, GetUserPreferences, args)
}

func (ps *Registry) GetAlertTypePreferences(ctx context.Context, alertType alert.AlertTypeID, userIds []string) ([]alert.Preference, error) {

	if len(userIds) == 0 {
		return []alert.Preference{}, nil
	}

	args := pgx.NamedArgs{
		"alertType": string(alertType),
		"userIds":   userIds,
	}

	return ps.queryPreferences(ctx, GetAlertTypePreferences, args)
}

func (ps *Registry) SetPreference(ctx context.Context, pref alert.Preference) error {

	args := pgx.NamedArgs{
		"userId":     pref.UserID,
		"alertType":  string(pref.AlertType),
		"backend":    string(pref.Backend),
		"preference": pref.Enabled,
	}

	_, err := ps.conn.Exec(ctx, UpsertPreference, args)

	if err != nil {
		return fmt.Errorf("failed to upsert preference - %w", err)
	}

	return nil
}

func (ps *Registry) DeletePreference(ctx context.Context, userId string, alertType alert.AlertTypeID, backend alert.BackendID) error {

	args := pgx.NamedArgs{
		"userId":    userId,
		"alertType": string(alertType),
		"backend":   string(backend),
	}

	_, err := ps.conn.Exec(ctx, DeletePreference, args)

	if err != nil {
		return fmt.Errorf("failed to delete preference - %w", err)
	}

	return nil
}
