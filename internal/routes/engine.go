package routes

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/auth"
	"github.com/notifique/alert/internal/cache"
	"github.com/notifique/alert/internal/controllers"
	"github.com/notifique/alert/internal/middleware"
)

const versionRegex = "(/v[0-9]{1,2}|^$)"

type Registry interface {
	controllers.PreferenceRegistry
	controllers.AlertRegistry
}

type EngineConfigurator interface {
	GetVersion() (string, error)
	GetCacheTTL() (time.Duration, error)
}

type EngineConfig struct {
	Registry           Registry
	Catalog            *alert.Catalog
	Cache              cache.Cache
	Metrics            controllers.Metrics
	EngineConfigurator EngineConfigurator
	Authorize          func(...auth.Scope) gin.HandlerFunc
	Authenticate       middleware.AuthMiddleware
	RateLimit          middleware.RateLimitMiddleware
}

type routeGroupCfg struct {
	Engine              *gin.Engine
	Version             string
	AuthorizeMiddleware func(...auth.Scope) gin.HandlerFunc
}

func NewEngine(cfg EngineConfig) (*gin.Engine, error) {

	version, err := cfg.EngineConfigurator.GetVersion()

	if err != nil {
		return nil, err
	}

	match, _ := regexp.MatchString(versionRegex, version)

	if !match {
		return nil, fmt.Errorf("api version should have the format %s", versionRegex)
	}

	ttl, err := cfg.EngineConfigurator.GetCacheTTL()

	if err != nil {
		return nil, err
	}

	if cfg.Catalog == nil {
		return nil, fmt.Errorf("alert catalog can't be nil")
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("alertid", internal.AlertIdValidator)
	}

	resolver := alert.NewResolver(cfg.Registry, cfg.Catalog)

	cc := controllers.CatalogController{
		Catalog: cfg.Catalog,
	}

	pc := controllers.PreferenceController{
		Registry: cfg.Registry,
		Resolver: resolver,
		Cache:    cfg.Cache,
		CacheTTL: ttl,
		Metrics:  cfg.Metrics,
	}

	ac := controllers.AlertController{
		Registry: cfg.Registry,
		Resolver: resolver,
		Metrics:  cfg.Metrics,
	}

	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(gin.HandlerFunc(cfg.Authenticate))
	r.Use(gin.HandlerFunc(cfg.RateLimit))

	routesCfg := routeGroupCfg{
		Engine:              r,
		Version:             version,
		AuthorizeMiddleware: cfg.Authorize,
	}

	_ = SetupCatalogRoutes(catalogRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &cc,
	})

	_ = SetupPreferenceRoutes(preferenceRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &pc,
	})

	_ = SetupAlertRoutes(alertRoutesCfg{
		routeGroupCfg: routesCfg,
		Controller:    &ac,
	})

	return r, nil
}
