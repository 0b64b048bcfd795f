package routes

import (
	"github.com/notifique/alert/internal/auth"
	c "github.com/notifique/alert/internal/controllers"
)

type preferenceRoutesCfg struct {
	routeGroupCfg
	Controller *c.PreferenceController
}

func SetupPreferenceRoutes(cfg preferenceRoutesCfg) error {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.GET("/users/me/alerts/preferences",
			cfg.Controller.GetUserPreferences)

		g.PUT("/users/me/alerts/preferences",
			cfg.AuthorizeMiddleware(auth.User),
			cfg.Controller.SetPreference)

		g.DELETE("/users/me/alerts/preferences/:alertType/:backend",
			cfg.AuthorizeMiddleware(auth.User),
			cfg.Controller.DeletePreference)
	}

	return nil
}
