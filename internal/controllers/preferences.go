package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal"
	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/cache"
	"github.com/notifique/alert/internal/convertors"
	"github.com/notifique/alert/internal/dto"
	"github.com/notifique/alert/internal/metrics"
)

type PreferenceRegistry interface {
	alert.PreferenceStore
	SetPreference(ctx context.Context, pref alert.Preference) error
	DeletePreference(ctx context.Context, userId string, alertType alert.AlertTypeID, backend alert.BackendID) error
}

type PreferenceController struct {
	Registry PreferenceRegistry
	Resolver *alert.Resolver
	Cache    cache.Cache
	CacheTTL time.Duration
	Metrics  Metrics
}

// GetUserPreferences serves authenticated users from the cache and fills it
// on a miss. Writes drop the key only after the store commits, so a lookup
// that resolved before a concurrent write can still cache the old overrides.
// Such an entry stays stale for at most CacheTTL.
func (pc *PreferenceController) GetUserPreferences(c *gin.Context) {

	user := getUser(c)

	if !user.IsAuthenticated() {
		prefs, err := pc.Resolver.GetUserPrefs(c, alert.Anonymous)

		if err != nil {
			slog.Error(err.Error())
			c.Status(http.StatusInternalServerError)
			return
		}

		pc.Metrics.RecordPreferenceLookup(metrics.LookupAnonymous)
		c.JSON(http.StatusOK, convertors.MakeUserPreferencesResp(user, pc.Resolver.Catalog(), prefs))
		return
	}

	key := cache.GetPreferencesKey(user.ID)
	cached, err, ok := pc.Cache.Get(c.Request.Context(), key)

	if err != nil {
		slog.Error(err.Error())
	} else if ok {
		pc.Metrics.RecordPreferenceLookup(metrics.LookupCached)
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	prefs, err := pc.Resolver.GetUserPrefs(c, user)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := convertors.MakeUserPreferencesResp(user, pc.Resolver.Catalog(), prefs)
	marshalled, err := json.Marshal(resp)

	if err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := pc.Cache.Set(c.Request.Context(), key, string(marshalled), pc.CacheTTL); err != nil {
		slog.Error(err.Error())
	}

	pc.Metrics.RecordPreferenceLookup(metrics.LookupResolved)
	c.Data(http.StatusOK, "application/json; charset=utf-8", marshalled)
}

func (pc *PreferenceController) SetPreference(c *gin.Context) {

	var req dto.PreferenceReq

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := getUser(c)

	if !user.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	catalog := pc.Resolver.Catalog()

	if _, err := catalog.AlertType(alert.AlertTypeID(req.AlertType)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := catalog.Backend(alert.BackendID(req.Backend)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref := convertors.MakePreference(user.ID, req)

	if err := pc.Registry.SetPreference(c, pref); err != nil {
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	pc.invalidate(c, user.ID)

	c.JSON(http.StatusOK, dto.PreferenceResp{
		AlertType: req.AlertType,
		Backend:   req.Backend,
		Enabled:   pref.Enabled,
	})
}

// DeletePreference drops the user's override so the pair falls back to
// the alert type default. Pairs that left the catalog can still be
// deleted.
func (pc *PreferenceController) DeletePreference(c *gin.Context) {

	var params dto.PreferenceUriParams

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := getUser(c)

	if !user.IsAuthenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := pc.Registry.DeletePreference(c, user.ID,
		alert.AlertTypeID(params.AlertType),
		alert.BackendID(params.Backend))

	if err != nil {
		if errors.As(err, &internal.EntityNotFound{}) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Error(err.Error())
		c.Status(http.StatusInternalServerError)
		return
	}

	pc.invalidate(c, user.ID)

	c.Status(http.StatusNoContent)
}

// invalidate must run after the store write succeeded.
func (pc *PreferenceController) invalidate(c *gin.Context, userId string) {
	if err := pc.Cache.Del(c.Request.Context(), cache.GetPreferencesKey(userId)); err != nil {
		slog.Error(err.Error())
	}
}
