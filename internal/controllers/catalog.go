package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal/alert"
	"github.com/notifique/alert/internal/convertors"
)

type CatalogController struct {
	Catalog *alert.Catalog
}

func (cc *CatalogController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, convertors.MakeCatalogResp(cc.Catalog))
}
