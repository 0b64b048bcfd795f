package postgresregistry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/registry"
)

type storedAlert struct {
	Id        string     `db:"id"`
	UserId    string     `db:"user_id"`
	AlertType string     `db:"alert_type"`
	Backend   string     `db:"backend"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	When      time.Time  `db:"when"`
	IsSent    bool       `db:"is_sent"`
	SentAt    *time.Time `db:"sent_at"`
}

func (a *storedAlert) toAlert() alert.Alert {
	return alert.Alert{
		ID:        a.Id,
		UserID:    a.UserId,
		AlertType: alert.AlertTypeID(a.AlertType),
		Backend:   alert.BackendID(a.Backend),
		Title:     a.Title,
		Body:      a.Body,
		When:      a.When.UTC(),
		IsSent:    a.IsSent,
		SentAt:    a.SentAt,
	}
}

const InsertAlert = `
INSERT INTO alerts (
	id,
	user_id,
	alert_type,
	backend,
	title,
	body,
	"when",
	is_sent
) VALUES (
	@id,
	@userId,
	@alertType,
	@backend,
	@title,
	@body,
	@when,
	FALSE
);
`

const GetPendingAlerts = `
SELECT
	id,
	user_id,
	alert_type,
	backend,
	title,
	body,
	"when",
	is_sent,
	sent_at
FROM
	alerts
WHERE
	"when" <= @now AND
	is_sent = FALSE
ORDER BY
	"when" ASC,
	id ASC;
`

const MarkSent = `
UPDATE
	alerts
SET
	is_sent = TRUE,
	sent_at = @sentAt
WHERE
	id = @id
RETURNING
	id;
`

func (ps *Registry) CreateAlerts(ctx context.Context, alerts []alert.Alert) ([]alert.Alert, error) {

	created := make([]alert.Alert, 0, len(alerts))

	if len(alerts) == 0 {
		return created, nil
	}

	if err := alert.CheckSchedules(alerts); err != nil {
		return nil, err
	}

	for _, a := range alerts {
		id, err := uuid.NewV7()

		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid - %w", err)
		}

		a.ID = id.String()
		a.When = a.When.UTC()
		a.IsSent = false
		a.SentAt = nil

		created = append(created, a)
	}

	tx, err := ps.conn.Begin(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to start transaction - %w", err)
	}

	builder := func(a alert.Alert) pgx.NamedArgs {
		return pgx.NamedArgs{
			"id":        a.ID,
			"userId":    a.UserID,
			"alertType": string(a.AlertType),
			"backend":   string(a.Backend),
			"title":     a.Title,
			"body":      a.Body,
			"when":      a.When,
		}
	}

	err = batchInsert(ctx, InsertAlert, created, builder, tx)

	if err != nil {
		rollbackErr := tx.Rollback(ctx)
		err = errors.Join(err, rollbackErr)
		return nil, fmt.Errorf("failed to batch insert alerts - %w", err)
	}

	err = tx.Commit(ctx)

	if err != nil {
		return nil, fmt.Errorf("commit failed - %w", err)
	}

	return created, nil
}

func (ps *Registry) GetPendingAlerts(ctx context.Context, now time.Time) ([]alert.Alert, error) {

	args := pgx.NamedArgs{"now": now}

	rows, err := ps.conn.Query(ctx, GetPendingAlerts, args)

	if err != nil {
		return nil, fmt.Errorf("failed to query rows - %w", err)
	}

	defer rows.Close()

	stored, err := pgx.CollectRows(rows, pgx.RowToStructByName[storedAlert])

	if err != nil {
		return nil, fmt.Errorf("failed to collect rows - %w", err)
	}

	pending := make([]alert.Alert, 0, len(stored))

	for _, a := range stored {
		pending = append(pending, a.toAlert())
	}

	return pending, nil
}

func (ps *Registry) MarkSent(ctx context.Context, id string, sentAt time.Time) error {

	args := pgx.NamedArgs{
		"id":     id,
		"sentAt": sentAt.UTC(),
	}

	var updated string

	err := ps.conn.QueryRow(ctx, MarkSent, args).Scan(&updated)

	if errors.Is(err, pgx.ErrNoRows) {
		return internal.EntityNotFound{Id: id, Type: registry.AlertType}
	}

	if err != nil {
		return fmt.Errorf("failed to mark alert as sent - %w", err)
	}

	return nil
}
