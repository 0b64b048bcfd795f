package sqliteregistry

import (
	"context"
	"database/sql"
	"fmt"
)

// Keep in sync with migrations/000001_alerts.up.sql. Times are unix
// nanoseconds so ordering and the pending filter compare integers.
const schema = `
CREATE TABLE IF NOT EXISTS alert_preferences (
    user_id TEXT NOT NULL,
    alert_type TEXT NOT NULL,
    backend TEXT NOT NULL,
    preference INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (user_id, alert_type, backend)
);

CREATE INDEX IF NOT EXISTS idx_alert_preferences_alert_type
    ON alert_preferences(alert_type, user_id);

CREATE TABLE IF NOT EXISTS alerts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    alert_type TEXT NOT NULL,
    backend TEXT NOT NULL,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    scheduled_at INTEGER NOT NULL,
    is_sent INTEGER NOT NULL DEFAULT 0,
    sent_at INTEGER
);

CREATE INDEX IF NOT EXISTS idx_alerts_pending
    ON alerts(scheduled_at) WHERE is_sent = 0;
`

func initSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply sqlite schema - %w", err)
	}
	return nil
}
