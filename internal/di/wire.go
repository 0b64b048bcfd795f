//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/cache"
	"github.com/notifique/alert/internal/clients"
	cfg "github.com/notifique/alert/internal/config"
	"github.com/notifique/alert/internal/controllers"
	"github.com/notifique/alert/internal/metrics"
	"github.com/notifique/alert/internal/middleware"
	dynamoregistry "github.com/notifique/alert/internal/registry/dynamodb"
	pg "github.com/notifique/alert/internal/registry/postgres"
	sq "github.com/notifique/alert/internal/registry/sqlite"
	"github.com/notifique/alert/internal/routes"
	tcfg "github.com/notifique/alert/internal/testutils/config"
	mk "github.com/notifique/alert/internal/testutils/mocks"
)

type MockedBackend struct {
	Registry *mk.MockedRegistry
	Cache    *mk.MockCache
	Catalog  *alert.Catalog
	Engine   *gin.Engine
}

var DynamoSet = wire.NewSet(
	clients.NewDynamoDBClient,
	dynamoregistry.NewDynamoDBRegistry,
	wire.Bind(new(dynamoregistry.DynamoDBAPI), new(*dynamodb.Client)),
	wire.Bind(new(routes.Registry), new(*dynamoregistry.Registry)),
)

var PostgresSet = wire.NewSet(
	clients.NewPostgresPool,
	pg.NewPostgresRegistry,
	wire.Bind(new(routes.Registry), new(*pg.Registry)),
)

var SQLiteSet = wire.NewSet(
	clients.NewSQLiteDB,
	sq.NewSQLiteRegistry,
	wire.Bind(new(routes.Registry), new(*sq.Registry)),
)

var RedisSet = wire.NewSet(
	clients.NewRedisClient,
	wire.Bind(new(cache.CacheRedisApi), new(*redis.Client)),
)

var RedisCacheSet = wire.NewSet(
	cache.NewRedisCache,
	wire.Bind(new(cache.Cache), new(*cache.Redis)),
)

var CatalogSet = wire.NewSet(
	alert.NewCatalogFromConfig,
)

var MetricsSet = wire.NewSet(
	metrics.NewPrometheusMetrics,
	wire.Bind(new(controllers.Metrics), new(*metrics.PrometheusMetrics)),
)

var RedisRateSet = wire.NewSet(
	middleware.NewRedisLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis_rate.Limiter)),
)

var MiddlewareSet = wire.NewSet(
	RedisRateSet,
	wire.Struct(new(middleware.RateLimitCfg), "*"),
	middleware.NewRateLimitMiddleware,
	middleware.NewAuthMiddleware,
	wire.Value(middleware.Authorize),
)

var MockedRegistrySet = wire.NewSet(
	mk.NewMockPreferenceRegistry,
	mk.NewMockAlertRegistry,
	mk.NewMockedRegistry,
	wire.Bind(new(routes.Registry), new(*mk.MockedRegistry)),
)

var MockedCacheSet = wire.NewSet(
	mk.NewMockCache,
	wire.Bind(new(cache.Cache), new(*mk.MockCache)),
)

var MockedMiddlewareSet = wire.NewSet(
	mk.NewTestAuthMiddleware,
	mk.NewTestRateLimitMiddleware,
	wire.Value(middleware.Authorize),
)

var TestEngineConfiguratorSet = wire.NewSet(
	tcfg.NewTestEngineConfigurator,
	wire.Bind(new(routes.EngineConfigurator), new(tcfg.TestEngineConfigurator)),
)

var EnvConfigSet = wire.NewSet(
	cfg.NewEnvConfig,
	wire.Bind(new(clients.PostgresConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.DynamoConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.SQLiteConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.RedisConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(alert.CatalogConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(routes.EngineConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.AuthConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.RateLimitConfigurator), new(*cfg.EnvConfig)),
)

var EngineConfigSet = wire.NewSet(
	wire.Struct(new(routes.EngineConfig), "*"),
)

func InjectPostgres(ctx context.Context, envfile *string) (*gin.Engine, func(), error) {

	wire.Build(
		EnvConfigSet,
		PostgresSet,
		RedisSet,
		RedisCacheSet,
		CatalogSet,
		MetricsSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil, nil
}

func InjectDynamo(ctx context.Context, envfile *string) (*gin.Engine, func(), error) {

	wire.Build(
		EnvConfigSet,
		DynamoSet,
		RedisSet,
		RedisCacheSet,
		CatalogSet,
		MetricsSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil, nil
}

func InjectSQLite(ctx context.Context, envfile *string) (*gin.Engine, func(), error) {

	wire.Build(
		EnvConfigSet,
		SQLiteSet,
		RedisSet,
		RedisCacheSet,
		CatalogSet,
		MetricsSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil, nil
}

func InjectMockedBackend(ctx context.Context, mockController *gomock.Controller, catalog *alert.Catalog) (*MockedBackend, error) {

	wire.Build(
		TestEngineConfiguratorSet,
		MockedRegistrySet,
		MockedCacheSet,
		MockedMiddlewareSet,
		MetricsSet,
		EngineConfigSet,
		routes.NewEngine,
		wire.Struct(new(MockedBackend), "*"),
	)

	return nil, nil
}
