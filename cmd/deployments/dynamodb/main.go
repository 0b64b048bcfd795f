package main

import (
	"context"
	"flag"
	"log"

	"github.com/notifique/alert/internal/clients"
	"github.com/notifique/alert/internal/deployments"
)

type endpointConfig struct {
	endpoint string
}

func (c endpointConfig) GetDynamoClientConfig() clients.DynamoClientConfig {
	return clients.DynamoClientConfig{BaseEndpoint: &c.endpoint}
}

func main() {

	endpoint := flag.String("endpoint", "http://localhost:8000", "dynamodb endpoint")

	flag.Parse()

	client, err := clients.NewDynamoDBClient(endpointConfig{endpoint: *endpoint})

	if err != nil {
		log.Fatal(err)
	}

	err = deployments.CreateTables(context.TODO(), client)

	if err != nil {
		log.Fatalf("failed to create tables - %v", err)
	}

	log.Print("tables created!")
}
