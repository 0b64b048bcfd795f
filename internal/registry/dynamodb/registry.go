package dynamoregistry

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)

	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)

	DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

// Registry stores alert preferences and scheduled alerts in DynamoDB.
type Registry struct {
	client DynamoDBAPI
}

// DynamoPrimaryKey is implemented by the items that know how to build
// their own table key.
type DynamoPrimaryKey interface {
	GetKey() (DynamoKey, error)
}

type DynamoKey map[string]types.AttributeValue
type BatchWriteRequest map[string][]types.WriteRequest

// BatchWriteItem accepts at most 25 requests per call.
const maxBatchWriteSize = 25

// Unprocessed items are retried with an exponential backoff starting at
// batchWriteBackoff and capped at maxBatchWriteBackoff.
var (
	batchWriteBackoff    = 50 * time.Millisecond
	maxBatchWriteBackoff = 2 * time.Second
	maxBatchWriteRetries = 5
)

func MakeBatchWriteRequest[T any](table string, data []T) (BatchWriteRequest, error) {
	requests := make([]types.WriteRequest, 0, len(data))

	for _, d := range data {
		item, err := attributevalue.MarshalMap(d)

		if err != nil {
			return BatchWriteRequest{}, fmt.Errorf("failed to marshall - %w", err)
		}

		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{
				Item: item,
			},
		})
	}

	batchRequest := BatchWriteRequest{
		table: requests,
	}

	return batchRequest, nil
}

func batchWrite[T any](ctx context.Context, client DynamoDBAPI, table string, data []T) error {

	for start := 0; start < len(data); start += maxBatchWriteSize {
		end := min(start+maxBatchWriteSize, len(data))

		requestItems, err := MakeBatchWriteRequest(table, data[start:end])

		if err != nil {
			return fmt.Errorf("failed to create batch request - %w", err)
		}

		backoff := batchWriteBackoff

		for attempt := 0; len(requestItems) != 0; attempt++ {
			if attempt > maxBatchWriteRetries {
				return fmt.Errorf("unprocessed items left after %d retries", maxBatchWriteRetries)
			}

			if attempt > 0 {
				select {
				case <-ctx.Done():
					return fmt.Errorf("batch write interrupted - %w", ctx.Err())
				case <-time.After(backoff):
				}

				backoff = min(backoff*2, maxBatchWriteBackoff)
			}

			resp, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: requestItems,
			})

			if err != nil {
				return fmt.Errorf("failed to batch write items - %w", err)
			}

			requestItems = resp.UnprocessedItems
		}
	}

	return nil
}

func NewDynamoDBRegistry(a DynamoDBAPI) *Registry {
	return &Registry{client: a}
}
