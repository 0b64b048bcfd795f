package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifique/alert/internal/config"
)

func TestEnvConfigFromFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	contents := "API_VERSION=/v1\nREQUESTS_PER_SECOND=25\nDYNAMO_REGION=eu-west-1\nALERT_CATALOG=./config/alerts.yaml\nCACHE_TTL=30\n"
	require.NoError(t, os.WriteFile(envFile, []byte(contents), 0o600))

	for _, k := range []string{"API_VERSION", "REQUESTS_PER_SECOND", "DYNAMO_REGION", "ALERT_CATALOG", "CACHE_TTL", "DYNAMO_BASE_ENDPOINT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := config.NewEnvConfig(&envFile)
	require.NoError(t, err)

	version, err := cfg.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "/v1", version)

	rps, err := cfg.GetRequestsPerSecond()
	require.NoError(t, err)
	assert.Equal(t, 25, rps)

	path, err := cfg.GetCatalogPath()
	require.NoError(t, err)
	assert.Equal(t, "./config/alerts.yaml", path)

	ttl, err := cfg.GetCacheTTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ttl)

	dynamoCfg := cfg.GetDynamoClientConfig()
	require.NotNil(t, dynamoCfg.Region)
	assert.Equal(t, "eu-west-1", *dynamoCfg.Region)
	assert.Nil(t, dynamoCfg.BaseEndpoint)
}

func TestEnvConfigMissingVariables(t *testing.T) {
	for _, k := range []string{"POSTGRES_URL", "REDIS_URL", "JWKS_URL", "SQLITE_PATH"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := config.NewEnvConfig(nil)
	require.NoError(t, err)

	_, err = cfg.GetPostgresUrl()
	assert.EqualError(t, err, "postgres env variable POSTGRES_URL not set")

	_, err = cfg.GetRedisUrl()
	assert.Error(t, err)

	_, err = cfg.GetJWKSURL()
	assert.Error(t, err)

	_, err = cfg.GetSQLitePath()
	assert.Error(t, err)
}

func TestEnvConfigInvalidRequestsPerSecond(t *testing.T) {
	t.Setenv("REQUESTS_PER_SECOND", "many")

	cfg, err := config.NewEnvConfig(nil)
	require.NoError(t, err)

	_, err = cfg.GetRequestsPerSecond()
	assert.ErrorContains(t, err, "failed to parse requests per second to int")
}

func TestEnvConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	_, err := config.NewEnvConfig(&missing)
	assert.ErrorContains(t, err, "failed to load env file")
}
