// README: Place autocomplete and resolution handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gocab/internal/maps"
)

// PlaceFinder is implemented by maps.PlacesService.
type PlaceFinder interface {
	Autocomplete(ctx context.Context, input string, kind maps.PlaceKind) ([]maps.Suggestion, error)
	Resolve(ctx context.Context, placeID string) (string, error)
}

type PlacesHandler struct {
	places PlaceFinder
}

func NewPlacesHandler(p PlaceFinder) *PlacesHandler {
	return &PlacesHandler{places: p}
}

func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	kind := maps.KindAddress
	if c.Query("kind") == string(maps.KindCity) {
		kind = maps.KindCity
	}
	out, err := h.places.Autocomplete(c.Request.Context(), c.Query("input"), kind)
	if err != nil {
		writePlacesError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": out})
}

func (h *PlacesHandler) Resolve(c *gin.Context) {
	id := c.Param("id")
	addr, err := h.places.Resolve(c.Request.Context(), id)
	if err != nil {
		writePlacesError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"placeId": id, "address": addr})
}
