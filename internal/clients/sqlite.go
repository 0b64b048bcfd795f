package clients

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type SQLiteConfigurator interface {
	GetSQLitePath() (string, error)
}

func NewSQLiteDB(c SQLiteConfigurator) (*sql.DB, func(), error) {

	path, err := c.GetSQLitePath()

	if err != nil {
		return nil, nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database %s - %w", path, err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, cleanup, nil
}
