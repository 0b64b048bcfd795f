package registrytest

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	ps "github.com/notifique/alert/internal/registry/postgres"
	"github.com/notifique/alert/internal/testutils/containers"
)

type postgresRegistryTester struct {
	*ps.Registry
	conn *pgxpool.Pool
}

func (t *postgresRegistryTester) ClearDB(ctx context.Context) error {
	_, err := t.conn.Exec(ctx, `
		TRUNCATE alert_preferences;
		TRUNCATE alerts;
	`)

	return err
}

func NewPostgresRegistryTester(ctx context.Context) (*postgresRegistryTester, closer, error) {

	container, containerCloser, err := containers.NewPostgresContainer(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create container - %w", err)
	}

	url, err := container.GetPostgresUrl()

	if err != nil {
		containerCloser()
		return nil, nil, err
	}

	conn, err := pgxpool.New(ctx, url)

	if err != nil {
		containerCloser()
		return nil, nil, fmt.Errorf("failed to create pool - %w", err)
	}

	registry, err := ps.NewPostgresRegistry(conn)

	if err != nil {
		conn.Close()
		containerCloser()
		return nil, nil, fmt.Errorf("failed to create registry - %w", err)
	}

	tester := postgresRegistryTester{
		Registry: registry,
		conn:     conn,
	}

	closer := func() {
		conn.Close()
		containerCloser()
	}

	return &tester, closer, nil
}
