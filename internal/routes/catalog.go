package routes

import (
	c "github.com/notifique/alert/internal/controllers"
)

type catalogRoutesCfg struct {
	routeGroupCfg
	Controller *c.CatalogController
}

func SetupCatalogRoutes(cfg catalogRoutesCfg) error {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.GET("/alerts/types", cfg.Controller.GetCatalog)
	}

	return nil
}
