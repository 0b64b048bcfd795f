package clients

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoClientConfig holds the optional overrides used when building the
// DynamoDB client. Unset fields keep the values of the default AWS config.
type DynamoClientConfig struct {
	BaseEndpoint *string
	Region       *string
}

type DynamoConfigurator interface {
	GetDynamoClientConfig() DynamoClientConfig
}

func NewDynamoDBClient(c DynamoConfigurator) (client *dynamodb.Client, err error) {

	clientCfg := c.GetDynamoClientConfig()

	cfg, err := config.LoadDefaultConfig(context.TODO())

	if err != nil {
		return client, fmt.Errorf("failed to load default config - %w", err)
	}

	client = dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if clientCfg.BaseEndpoint != nil {
			o.BaseEndpoint = clientCfg.BaseEndpoint
		}

		if clientCfg.Region != nil {
			o.Region = *clientCfg.Region
		}
	})

	return
}
