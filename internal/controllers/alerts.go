package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/convertors"
	"github.com/notifique/alert/internal/dto"
)

type AlertRegistry interface {
	CreateAlerts(ctx context.Context, alerts []alert.Alert) ([]alert.Alert, error)
	GetPendingAlerts(ctx context.Context, now time.Time) ([]alert.Alert, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

type AlertController struct {
	Registry AlertRegistry
	Resolver *alert.Resolver
	Metrics  Metrics
	Now      func() time.Time
}

func (ac *AlertController) now() time.Time {
	if ac.Now == nil {
		return time.Now()
	}
	return ac.Now()
}

func (ac *AlertController) GetRecipients(c *gin.Context) {

	var req dto.RecipientsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alertType := alert.AlertTypeID(req.AlertType)
	users := convertors.MakeAlertUsers(req.Users)

	recipients, err := ac.Resolver.GetRecipientsForNotice(c, alertType, users)

	if err != nil {
		if errors.As(err, &internal.UnknownAlertType{}) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	ac.Metrics.RecordRecipients(alertType, recipients)

	c.JSON(http.StatusOK, convertors.MakeRecipientsResp(alertType, recipients))
}

func (ac *AlertController) CreateAlerts(c *gin.Context) {

	var req dto.CreateAlertsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog := ac.Resolver.Catalog()
	now := ac.now()
	alerts := make([]alert.Alert, 0, len(req.Alerts))

	for _, a := range req.Alerts {
		if _, err := catalog.AlertType(alert.AlertTypeID(a.AlertType)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := catalog.Backend(alert.BackendID(a.Backend)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		scheduled := convertors.MakeAlert(a, now)

		if err := alert.CheckSchedule(scheduled.When); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		alerts = append(alerts, scheduled)
	}

	created, err := ac.Registry.CreateAlerts(c, alerts)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	ac.Metrics.RecordScheduled(len(created))

	c.JSON(http.StatusCreated, convertors.MakeAlertsResp(created))
}

// GetPendingAlerts evaluates now once per request and applies the pending
// filter to what the store returns.
func (ac *AlertController) GetPendingAlerts(c *gin.Context) {

	now := ac.now()
	alerts, err := ac.Registry.GetPendingAlerts(c, now)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	pending := alert.Pending(alerts, now)
	ac.Metrics.RecordPending(len(pending))

	c.JSON(http.StatusOK, convertors.MakeAlertsResp(pending))
}

func (ac *AlertController) MarkSent(c *gin.Context) {

	var params dto.AlertUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ac.Registry.MarkSent(c, params.AlertId, ac.now())

	if err != nil {
		if errors.As(err, &internal.EntityNotFound{}) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
