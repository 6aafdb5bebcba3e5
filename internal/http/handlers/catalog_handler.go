// README: Catalog handler: vehicles, local packages and add-ons.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gocab/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type catalogResponse struct {
	Vehicles []catalog.Vehicle      `json:"vehicles"`
	Packages []catalog.LocalPackage `json:"packages"`
	Addons   []catalog.Addon        `json:"addons"`
}

func (h *CatalogHandler) Get(c *gin.Context) {
	writeJSON(c, http.StatusOK, catalogResponse{
		Vehicles: h.catalog.Vehicles(),
		Packages: h.catalog.Packages(),
		Addons:   h.catalog.Addons(),
	})
}
