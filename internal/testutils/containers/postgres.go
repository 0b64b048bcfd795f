package containers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/notifique/alert/internal/deployments"
)

const (
	PostgresDb       = "alerts"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
)

type PostgresContainer struct {
	testcontainers.Container
	URI string
}

func (pc *PostgresContainer) GetPostgresUrl() (string, error) {
	return pc.URI, nil
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, func(), error) {

	port := "5432"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16.3",
		ExposedPorts: []string{port + "/tcp"},
		WaitingFor:   wait.ForListeningPort(nat.Port(port)),
		Env: map[string]string{
			"POSTGRES_DB":       PostgresDb,
			"POSTGRES_PASSWORD": PostgresPassword,
			"POSTGRES_USER":     PostgresUser,
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		return nil, nil, fmt.Errorf("failed to init the postgres container - %w", err)
	}

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate postgres container", "reason", err)
		}
	}

	ip, err := container.Host(ctx)

	if err != nil {
		close()
		return nil, nil, fmt.Errorf("failed to get the postgres' host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		close()
		return nil, nil, fmt.Errorf("failed to acquire mapped port - %w", err)
	}

	uri := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		PostgresUser,
		PostgresPassword,
		ip,
		mappedPort.Port(),
		PostgresDb,
	)

	if err := deployments.RunMigrations(uri); err != nil {
		close()
		return nil, nil, err
	}

	return &PostgresContainer{Container: container, URI: uri}, close, nil
}
