package sqliteregistry

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/notifique/alert/internal/alert"
)

const getUserPreferences = `
SELECT
	user_id,
	alert_type,
	backend,
	preference
FROM
	alert_preferences
WHERE
	user_id = ?;
`

const getAlertTypePreferences = `
SELECT
	user_id,
	alert_type,
	backend,
	preference
FROM
	alert_preferences
WHERE
	alert_type = ? AND
	user_id IN (%s);
`

const upsertPreference = `
INSERT INTO alert_preferences (
	user_id,
	alert_type,
	backend,
	preference,
	updated_at
) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (user_id, alert_type, backend)
DO UPDATE SET
	preference = excluded.preference,
	updated_at = excluded.updated_at;
`

const deletePreference = `
DELETE FROM
	alert_preferences
WHERE
	user_id = ? AND
	alert_type = ? AND
	backend = ?;
`

func scanPreferences(rows *sql.Rows) ([]alert.Preference, error) {

	defer rows.Close()

	prefs := []alert.Preference{}

	for rows.Next() {
		var (
			p       alert.Preference
			enabled int64
		)

		err := rows.Scan(&p.UserID, &p.AlertType, &p.Backend, &enabled)

		if err != nil {
			return nil, fmt.Errorf("failed to scan preference - %w", err)
		}

		p.Enabled = enabled != 0
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences - %w", err)
	}

	return prefs, nil
}

func (r *Registry) GetUserPreferences(ctx context.Context, userId string) ([]alert.Preference, error) {

	rows, err := r.db.QueryContext(ctx, getUserPreferences, userId)

	if err != nil {
		return nil, fmt.Errorf("failed to query preferences - %w", err)
	}

	return scanPreferences(rows)
}

func (r *Registry) GetAlertTypePreferences(ctx context.Context, alertType alert.AlertTypeID, userIds []string) ([]alert.Preference, error) {

	if len(userIds) == 0 {
		return []alert.Preference{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(userIds)), ",")
	query := fmt.Sprintf(getAlertTypePreferences, placeholders)

	args := make([]any, 0, len(userIds)+1)
	args = append(args, string(alertType))

	for _, id := range userIds {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to query preferences - %w", err)
	}

	return scanPreferences(rows)
}

func (r *Registry) SetPreference(ctx context.Context, pref alert.Preference) error {

	_, err := r.db.ExecContext(ctx, upsertPreference,
		pref.UserID,
		string(pref.AlertType),
		string(pref.Backend),
		pref.Enabled,
		time.Now().UnixNano(),
	)

	if err != nil {
		return fmt.Errorf("failed to upsert preference - %w", err)
	}

	return nil
}

func (r *Registry) DeletePreference(ctx context.Context, userId string, alertType alert.AlertTypeID, backend alert.BackendID) error {

	_, err := r.db.ExecContext(ctx, deletePreference, userId, string(alertType), string(backend))

	if err != nil {
		return fmt.Errorf("failed to delete preference - %w", err)
	}

	return nil
}
