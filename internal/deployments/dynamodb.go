package deployments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	ddb "github.com/notifique/alert/internal/registry/dynamodb"
)

func tableExists(ctx context.Context, client *dynamodb.Client, tableName string) (bool, error) {

	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})

	if err == nil {
		return true, nil
	}

	var notFoundEx *types.ResourceNotFoundException

	if errors.As(err, &notFoundEx) {
		return false, nil
	} else {
		return false, err
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, input *dynamodb.CreateTableInput) error {

	tableName := aws.ToString(input.TableName)

	if exists, err := tableExists(ctx, client, tableName); exists || err != nil {
		return err
	}

	_, err := client.CreateTable(ctx, input)

	if err != nil {
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(client)

	descTableInput := dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}

	return waiter.Wait(ctx, &descTableInput, 5*time.Minute)
}

func createPreferencesTable(ctx context.Context, client *dynamodb.Client) error {

	tableInput := dynamodb.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{{
			AttributeName: aws.String(ddb.PreferencesHashKey),
			AttributeType: types.ScalarAttributeTypeS,
		}, {
			AttributeName: aws.String(ddb.PreferencesSortKey),
			AttributeType: types.ScalarAttributeTypeS,
		}},
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(ddb.PreferencesHashKey),
			KeyType:       types.KeyTypeHash,
		}, {
			AttributeName: aws.String(ddb.PreferencesSortKey),
			KeyType:       types.KeyTypeRange,
		}},
		TableName: aws.String(ddb.PreferencesTable),
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(10),
			WriteCapacityUnits: aws.Int64(10),
		},
	}

	return createTable(ctx, client, &tableInput)
}

func createAlertsTable(ctx context.Context, client *dynamodb.Client) error {

	tableInput := dynamodb.CreateTableInput{
		AttributeDefinitions: []types.AttributeDefinition{{
			AttributeName: aws.String(ddb.AlertsHashKey),
			AttributeType: types.ScalarAttributeTypeS,
		}},
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String(ddb.AlertsHashKey),
			KeyType:       types.KeyTypeHash,
		}},
		TableName: aws.String(ddb.AlertsTable),
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(10),
			WriteCapacityUnits: aws.Int64(10),
		},
	}

	return createTable(ctx, client, &tableInput)
}

func CreateTables(ctx context.Context, client *dynamodb.Client) error {

	if err := createPreferencesTable(ctx, client); err != nil {
		return fmt.Errorf("alert preferences table - %w", err)
	}

	if err := createAlertsTable(ctx, client); err != nil {
		return fmt.Errorf("alerts table - %w", err)
	}

	return nil
}
