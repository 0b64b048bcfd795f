package routes

import (
	"github.com/notifique/alert/internal/auth"
	c "github.com/notifique/alert/internal/controllers"
)

type alertRoutesCfg struct {
	routeGroupCfg
	Controller *c.AlertController
}

func SetupAlertRoutes(cfg alertRoutesCfg) error {

	g := cfg.Engine.Group(cfg.Version)
	{
		g.POST("/alerts/recipients",
			cfg.AuthorizeMiddleware(auth.Publisher),
			cfg.Controller.GetRecipients)

		g.POST("/alerts",
			cfg.AuthorizeMiddleware(auth.Publisher),
			cfg.Controller.CreateAlerts)

		g.GET("/alerts/pending",
			cfg.AuthorizeMiddleware(auth.Publisher),
			cfg.Controller.GetPendingAlerts)

		g.PATCH("/alerts/:id/sent",
			cfg.AuthorizeMiddleware(auth.Publisher),
			cfg.Controller.MarkSent)
	}

	return nil
}
