package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/auth"
)

type Metrics interface {
	RecordRecipients(alertType alert.AlertTypeID, recipients []alert.Recipient)
	RecordPreferenceLookup(outcome string)
	RecordPending(count int)
	RecordScheduled(count int)
}

// getUser returns the caller set by the authentication middleware, or
// alert.Anonymous when the request carries no identity.
func getUser(c *gin.Context) alert.User {
	return alert.User{ID: c.GetHeader(string(auth.UserHeader))}
}
