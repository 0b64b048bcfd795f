package deployments

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const MigrationsDir = "migrations"

// findMigrations walks up from the working directory until it finds the
// module root, the folder holding go.mod, and returns its migrations dir.
func findMigrations() (string, error) {

	wd, err := os.Getwd()

	if err != nil {
		return "", fmt.Errorf("failed to get current execution directory - %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, MigrationsDir), nil
		}

		parent := filepath.Dir(wd)

		if parent == wd {
			return "", fmt.Errorf("project root folder with go.mod not found")
		}

		wd = parent
	}
}

func RunMigrations(url string) error {

	migrationsPath, err := findMigrations()

	if err != nil {
		return err
	}

	m, err := migrate.New(fmt.Sprintf("file://%v", migrationsPath), url)

	if err != nil {
		return fmt.Errorf("failed to create Migrate - %w", err)
	}

	err = m.Up()

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations - %w", err)
	}

	return nil
}
