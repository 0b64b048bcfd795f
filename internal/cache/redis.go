package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type Key string

// Cache is a read-through store for resolved preferences. Entries are not
// versioned, so a fill racing an invalidation may keep an old value until
// its TTL expires.
type Cache interface {
	Get(ctx context.Context, key Key) (string, error, bool)
	Set(ctx context.Context, key Key, value string, ttl time.Duration) error
	Del(ctx context.Context, key Key) error
}

type CacheRedisApi interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Redis struct {
	client CacheRedisApi
}

func GetPreferencesKey(userId string) Key {
	return Key(fmt.Sprintf("alerts:preferences:%s", userId))
}

func (rc *Redis) Get(ctx context.Context, key Key) (string, error, bool) {

	val, err := rc.client.Get(ctx, string(key)).Result()

	if errors.Is(err, redis.Nil) {
		return "", nil, false
	} else if err != nil {
		return "", fmt.Errorf("failed to retrieve key %s - %w", key, err), false
	}

	return val, nil, true
}

func (rc *Redis) Set(ctx context.Context, key Key, value string, ttl time.Duration) error {

	_, err := rc.client.Set(ctx, string(key), value, ttl).Result()

	if err != nil {
		return fmt.Errorf("failed to set key %s - %w", key, err)
	}

	return nil
}

func (rc *Redis) Del(ctx context.Context, key Key) error {

	_, err := rc.client.Del(ctx, string(key)).Result()

	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete key %s - %w", key, err)
	}

	return nil
}

func NewRedisCache(client CacheRedisApi) *Redis {
	return &Redis{client: client}
}
