package registrytest

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/notifique/alert/internal/clients"
	ds "github.com/notifique/alert/internal/registry/dynamodb"
	"github.com/notifique/alert/internal/testutils/containers"
)

type dynamoRegistryTester struct {
	*ds.Registry
	client    ds.DynamoDBAPI
	container *containers.DynamoContainer
}

func (t *dynamoRegistryTester) ClearDB(ctx context.Context) error {

	tables := []string{
		ds.PreferencesTable,
		ds.AlertsTable,
	}

	for _, table := range tables {
		_, err := t.client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
			TableName: aws.String(table),
		})

		if err != nil {
			return fmt.Errorf("failed to delete %s table - %w", table, err)
		}
	}

	return t.container.CreateTables(ctx)
}

func NewDynamoRegistryTester(ctx context.Context) (*dynamoRegistryTester, closer, error) {

	container, containerCloser, err := containers.NewDynamoContainer(ctx)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to create container - %w", err)
	}

	client, err := clients.NewDynamoDBClient(container)

	if err != nil {
		containerCloser()
		return nil, nil, fmt.Errorf("failed to create dynamo client - %w", err)
	}

	t := dynamoRegistryTester{
		Registry:  ds.NewDynamoDBRegistry(client),
		client:    client,
		container: container,
	}

	return &t, closer(containerCloser), nil
}
