package sqliteregistry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/registry"
)

const insertAlert = `
INSERT INTO alerts (
	id,
	user_id,
	alert_type,
	backend,
	title,
	body,
	scheduled_at,
	is_sent
) VALUES (?, ?, ?, ?, ?, ?, ?, 0);
`

const getPendingAlerts = `
SELECT
	id,
	user_id,
	alert_type,
	backend,
	title,
	body,
	scheduled_at,
	is_sent,
	sent_at
FROM
	alerts
WHERE
	scheduled_at <= ? AND
	is_sent = 0
ORDER BY
	scheduled_at ASC,
	id ASC;
`

const markSent = `
UPDATE
	alerts
SET
	is_sent = 1,
	sent_at = ?
WHERE
	id = ?;
`

func (r *Registry) CreateAlerts(ctx context.Context, alerts []alert.Alert) ([]alert.Alert, error) {

	created := make([]alert.Alert, 0, len(alerts))

	if len(alerts) == 0 {
		return created, nil
	}

	if err := alert.CheckSchedules(alerts); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)

	if err != nil {
		return nil, fmt.Errorf("failed to start transaction - %w", err)
	}

	for _, a := range alerts {
		id, err := uuid.NewV7()

		if err != nil {
			return nil, errors.Join(
				fmt.Errorf("failed to generate uuid - %w", err),
				tx.Rollback(),
			)
		}

		a.ID = id.String()
		a.When = a.When.UTC()
		a.IsSent = false
		a.SentAt = nil

		_, err = tx.ExecContext(ctx, insertAlert,
			a.ID,
			a.UserID,
			string(a.AlertType),
			string(a.Backend),
			a.Title,
			a.Body,
			a.When.UnixNano(),
		)

		if err != nil {
			return nil, errors.Join(
				fmt.Errorf("failed to insert alert - %w", err),
				tx.Rollback(),
			)
		}

		created = append(created, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit failed - %w", err)
	}

	return created, nil
}

func (r *Registry) GetPendingAlerts(ctx context.Context, now time.Time) ([]alert.Alert, error) {

	rows, err := r.db.QueryContext(ctx, getPendingAlerts, alert.ClampSchedule(now).UnixNano())

	if err != nil {
		return nil, fmt.Errorf("failed to query alerts - %w", err)
	}

	defer rows.Close()

	pending := []alert.Alert{}

	for rows.Next() {
		var (
			a         alert.Alert
			scheduled int64
			isSent    int64
			sentAt    sql.NullInt64
		)

		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.AlertType,
			&a.Backend,
			&a.Title,
			&a.Body,
			&scheduled,
			&isSent,
			&sentAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failed to scan alert - %w", err)
		}

		a.When = time.Unix(0, scheduled).UTC()
		a.IsSent = isSent != 0

		if sentAt.Valid {
			t := time.Unix(0, sentAt.Int64).UTC()
			a.SentAt = &t
		}

		pending = append(pending, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate alerts - %w", err)
	}

	return pending, nil
}

func (r *Registry) MarkSent(ctx context.Context, id string, sentAt time.Time) error {

	res, err := r.db.ExecContext(ctx, markSent, sentAt.UnixNano(), id)

	if err != nil {
		return fmt.Errorf("failed to mark alert as sent - %w", err)
	}

	affected, err := res.RowsAffected()

	if err != nil {
		return fmt.Errorf("failed to read affected rows - %w", err)
	}

	if affected == 0 {
		return internal.EntityNotFound{Id: id, Type: registry.AlertType}
	}

	return nil
}
