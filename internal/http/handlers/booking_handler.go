// README: Checkout handlers: summary, live totals, coupon and proceed.
package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"gocab/internal/modules/booking"
	"gocab/internal/modules/tripctx"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

// Summary serves GET /api/booking?<carrier query>.
func (h *BookingHandler) Summary(c *gin.Context) {
	tc, err := tripctx.Parse(c.Request.URL.Query())
	if err != nil {
		writeBookingError(c, err)
		return
	}
	s, err := h.booking.Summary(tc)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, s)
}

type priceReq struct {
	// Trip is the carrier query the page was opened with, with or without "?".
	Trip        string   `json:"trip"`
	Addons      []string `json:"addons"`
	Coupon      string   `json:"coupon"`
	PaymentMode string   `json:"paymentMode"`
}

func (h *BookingHandler) Price(c *gin.Context) {
	var req priceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tc, ok := parseTrip(c, req.Trip)
	if !ok {
		return
	}
	p, err := h.booking.Price(c.Request.Context(), booking.PriceRequest{
		Trip:        tc,
		AddonIDs:    req.Addons,
		CouponCode:  req.Coupon,
		PaymentMode: req.PaymentMode,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

type proceedReq struct {
	Trip           string   `json:"trip"`
	FullName       string   `json:"fullName"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	PickupLocation string   `json:"pickupLocation"`
	DropLocation   string   `json:"dropLocation"`
	Addons         []string `json:"addons"`
	Coupon         string   `json:"coupon"`
	PaymentMode    string   `json:"paymentMode"`
}

func (h *BookingHandler) Proceed(c *gin.Context) {
	var req proceedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tc, ok := parseTrip(c, req.Trip)
	if !ok {
		return
	}
	conf, err := h.booking.Proceed(c.Request.Context(), booking.Draft{
		Trip:           tc,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		AddonIDs:       req.Addons,
		CouponCode:     req.Coupon,
		PaymentMode:    booking.PaymentMode(req.PaymentMode),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, conf)
}

type couponReq struct {
	Code string `json:"code"`
}

func (h *BookingHandler) ApplyCoupon(c *gin.Context) {
	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.booking.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

func parseTrip(c *gin.Context, raw string) (tripctx.Context, bool) {
	q, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip query")
		return tripctx.Context{}, false
	}
	tc, err := tripctx.Parse(q)
	if err != nil {
		writeBookingError(c, err)
		return tripctx.Context{}, false
	}
	return tc, true
}
