package containers

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/notifique/alert/internal/clients"
	"github.com/notifique/alert/internal/deployments"
)

type DynamoContainer struct {
	testcontainers.Container
	URI string
}

func (dc *DynamoContainer) GetDynamoClientConfig() clients.DynamoClientConfig {
	return clients.DynamoClientConfig{
		BaseEndpoint: &dc.URI,
		Region:       aws.String("us-east-1"),
	}
}

func (dc *DynamoContainer) CreateTables(ctx context.Context) error {

	client, err := clients.NewDynamoDBClient(dc)

	if err != nil {
		return err
	}

	if err := deployments.CreateTables(ctx, client); err != nil {
		return fmt.Errorf("failed to create tables - %w", err)
	}

	return nil
}

// NewDynamoContainer starts dynamodb-local with the alert tables created.
// The SDK refuses to sign requests without credentials, dynamodb-local
// accepts any.
func NewDynamoContainer(ctx context.Context) (*DynamoContainer, func(), error) {

	port := "8000"

	for _, k := range []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY"} {
		if _, ok := os.LookupEnv(k); !ok {
			os.Setenv(k, "local")
		}
	}

	req := testcontainers.ContainerRequest{
		Image:        "amazon/dynamodb-local:2.4.0",
		ExposedPorts: []string{port + "/tcp"},
		WaitingFor:   wait.ForListeningPort(nat.Port(port)),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		return nil, nil, fmt.Errorf("failed to init the dynamodb container - %w", err)
	}

	close := func() {
		err := container.Terminate(ctx)

		if err != nil {
			slog.Error("failed to terminate dynamo container", "reason", err)
		}
	}

	ip, err := container.Host(ctx)

	if err != nil {
		close()
		return nil, nil, fmt.Errorf("failed to get the dynamodb's host - %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, nat.Port(port))

	if err != nil {
		close()
		return nil, nil, fmt.Errorf("failed to acquire mapped port - %w", err)
	}

	dc := DynamoContainer{
		Container: container,
		URI:       fmt.Sprintf("http://%s:%s", ip, mappedPort.Port()),
	}

	if err := dc.CreateTables(ctx); err != nil {
		close()
		return nil, nil, err
	}

	return &dc, close, nil
}
