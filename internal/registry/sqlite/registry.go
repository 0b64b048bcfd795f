package sqliteregistry

import (
	"context"
	"database/sql"
	"fmt"
)

// Registry stores alert preferences and scheduled alerts in a local
// SQLite file. It is meant for single node deployments and tests.
type Registry struct {
	db *sql.DB
}

func NewSQLiteRegistry(ctx context.Context, db *sql.DB) (*Registry, error) {

	if db == nil {
		return nil, fmt.Errorf("db can't be nil")
	}

	if err := initSchema(ctx, db); err != nil {
		return nil, err
	}

	return &Registry{db: db}, nil
}
