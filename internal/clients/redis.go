package clients

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisConfigurator interface {
	GetRedisUrl() (string, error)
}

func NewRedisClient(c RedisConfigurator) (*redis.Client, func(), error) {

	url, err := c.GetRedisUrl()

	if err != nil {
		return nil, nil, err
	}

	opts, err := redis.ParseURL(url)

	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url - %w", err)
	}

	client := redis.NewClient(opts)

	cleanup := func() {
		client.Close()
	}

	return client, cleanup, nil
}
