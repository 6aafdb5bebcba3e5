// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gocab/internal/maps"
	"gocab/internal/modules/booking"
	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
	"gocab/internal/modules/tripctx"
)

// statusClientClosed is logged when the caller left before the answer was ready.
const statusClientClosed = 499

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrMissingRoute),
		errors.Is(err, pricing.ErrMissingCity),
		errors.Is(err, tripctx.ErrUnsupportedVersion):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, maps.ErrMissingAPIKey):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, "route distance lookup timed out")
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(statusClientClosed)
	case errors.Is(err, pricing.ErrDistanceUnavailable):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrMissingFullName),
		errors.Is(err, booking.ErrMissingPhone),
		errors.Is(err, booking.ErrMissingPickup),
		errors.Is(err, booking.ErrMissingDrop),
		errors.Is(err, booking.ErrInvalidPaymentMode),
		errors.Is(err, catalog.ErrUnknownAddon),
		errors.Is(err, catalog.ErrUnknownVehicle),
		errors.Is(err, tripctx.ErrUnsupportedVersion):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writePlacesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, maps.ErrEmptyInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, maps.ErrMissingAPIKey):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		c.AbortWithStatus(statusClientClosed)
	default:
		_ = c.Error(err)
		writeError(c, http.StatusBadGateway, "places lookup failed")
	}
}
