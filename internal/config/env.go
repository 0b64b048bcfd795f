package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/notifique/alert/internal/clients"
)

const (
	postgresUrl        = "POSTGRES_URL"
	dynamoBaseEndpoint = "DYNAMO_BASE_ENDPOINT"
	dynamoRegion       = "DYNAMO_REGION"
	sqlitePath         = "SQLITE_PATH"
	redisUrl           = "REDIS_URL"
	apiVersion         = "API_VERSION"
	requestsPerSecond  = "REQUESTS_PER_SECOND"
	jwksUrl            = "JWKS_URL"
	alertCatalog       = "ALERT_CATALOG"
	cacheTTL           = "CACHE_TTL"
)

type EnvConfig struct{}

func (cfg EnvConfig) GetPostgresUrl() (string, error) {

	url, ok := os.LookupEnv(postgresUrl)

	if !ok {
		return "", fmt.Errorf("postgres env variable %s not set", postgresUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetDynamoClientConfig() (dcfg clients.DynamoClientConfig) {

	if be, ok := os.LookupEnv(dynamoBaseEndpoint); ok {
		dcfg.BaseEndpoint = &be
	}

	if region, ok := os.LookupEnv(dynamoRegion); ok {
		dcfg.Region = &region
	}

	return
}

func (cfg EnvConfig) GetSQLitePath() (string, error) {

	path, ok := os.LookupEnv(sqlitePath)

	if !ok {
		return "", fmt.Errorf("sqlite path env variable %s not set", sqlitePath)
	}

	return path, nil
}

func (cfg EnvConfig) GetRedisUrl() (string, error) {

	url, ok := os.LookupEnv(redisUrl)

	if !ok {
		return "", fmt.Errorf("redis url %s not set", redisUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetVersion() (string, error) {
	version, ok := os.LookupEnv(apiVersion)

	if !ok {
		return "", fmt.Errorf("api version env variable %s not found", apiVersion)
	}

	return version, nil
}

func (cfg EnvConfig) GetRequestsPerSecond() (int, error) {

	rps, ok := os.LookupEnv(requestsPerSecond)

	if !ok {
		return 0, fmt.Errorf("requests per second env variable %s not found", requestsPerSecond)
	}

	rpsInt, err := strconv.Atoi(rps)

	if err != nil {
		return 0, fmt.Errorf("failed to parse requests per second to int - %w", err)
	}

	return rpsInt, nil
}

func (cfg EnvConfig) GetJWKSURL() (string, error) {

	jwks, ok := os.LookupEnv(jwksUrl)

	if !ok {
		return "", fmt.Errorf("jwks url env variable %s not found", jwksUrl)
	}

	return jwks, nil
}

func (cfg EnvConfig) GetCatalogPath() (string, error) {

	path, ok := os.LookupEnv(alertCatalog)

	if !ok {
		return "", fmt.Errorf("alert catalog env variable %s not found", alertCatalog)
	}

	return path, nil
}

func (cfg EnvConfig) GetCacheTTL() (time.Duration, error) {

	ttl, ok := os.LookupEnv(cacheTTL)

	if !ok {
		return 0, fmt.Errorf("cache ttl env variable %s not found", cacheTTL)
	}

	seconds, err := strconv.Atoi(ttl)

	if err != nil {
		return 0, fmt.Errorf("failed to parse cache ttl to int - %w", err)
	}

	return time.Duration(seconds) * time.Second, nil
}

func NewEnvConfig(envFile *string) (*EnvConfig, error) {

	if envFile == nil {
		cfg := EnvConfig{}
		return &cfg, nil
	}

	err := godotenv.Load(*envFile)

	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s - %w", *envFile, err)
	}

	cfg := EnvConfig{}
	return &cfg, nil
}
