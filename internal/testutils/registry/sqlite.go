package registrytest

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	ss "github.com/notifique/alert/internal/registry/sqlite"
)

type sqliteRegistryTester struct {
	*ss.Registry
	db *sql.DB
}

func (t *sqliteRegistryTester) ClearDB(ctx context.Context) error {
	_, err := t.db.ExecContext(ctx, `
		DELETE FROM alert_preferences;
		DELETE FROM alerts;
	`)

	return err
}

// NewSQLiteRegistryTester runs against an in-memory database. The pool is
// capped at one connection since every new connection to ":memory:" opens
// an empty database.
func NewSQLiteRegistryTester(ctx context.Context) (*sqliteRegistryTester, closer, error) {

	db, err := sql.Open("sqlite", ":memory:")

	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database - %w", err)
	}

	db.SetMaxOpenConns(1)

	registry, err := ss.NewSQLiteRegistry(ctx, db)

	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create registry - %w", err)
	}

	tester := sqliteRegistryTester{
		Registry: registry,
		db:       db,
	}

	closer := func() {
		db.Close()
	}

	return &tester, closer, nil
}
