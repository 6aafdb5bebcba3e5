// README: Booking draft, totals and payment mode shapes for the checkout page.
package booking

import (
	"errors"
	"strings"

	"gocab/internal/modules/catalog"
	"gocab/internal/modules/tripctx"
	"gocab/internal/types"
)

// The Missing* messages are shown to the user as written.
var (
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
	ErrMissingFullName    = errors.New("Please enter full name.")
	ErrMissingPhone       = errors.New("Please enter mobile number.")
	ErrMissingPickup      = errors.New("Please enter pickup location.")
	ErrMissingDrop        = errors.New("Please enter drop location.")
)

type PaymentMode string

const (
	PayBookAtZero PaymentMode = "BOOK_AT_ZERO"
	PayPart       PaymentMode = "PART_PAY"
	PayFull       PaymentMode = "FULL_PAY"
)

// DefaultPaymentMode is preselected on the checkout page.
const DefaultPaymentMode = PayPart

// ParsePaymentMode accepts the three modes; an empty string is the default.
func ParsePaymentMode(s string) (PaymentMode, error) {
	switch m := PaymentMode(strings.TrimSpace(s)); m {
	case "":
		return DefaultPaymentMode, nil
	case PayBookAtZero, PayPart, PayFull:
		return m, nil
	}
	return "", ErrInvalidPaymentMode
}

type Totals struct {
	BasePrice   int64       `json:"basePrice"`
	AddonsTotal int64       `json:"addonsTotal"`
	Discount    int64       `json:"discount"`
	GrandTotal  int64       `json:"grandTotal"`
	PayNow      int64       `json:"payNow"`
	PaymentMode PaymentMode `json:"paymentMode"`
}

// PaymentOption previews what one mode would charge now.
type PaymentOption struct {
	Mode   PaymentMode `json:"mode"`
	PayNow int64       `json:"payNow"`
	Label  string      `json:"label"`
}

// Draft is the checkout form. It lives for one request and is never stored.
type Draft struct {
	Trip           tripctx.Context `json:"-"`
	FullName       string          `json:"fullName"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	PickupLocation string          `json:"pickupLocation"`
	DropLocation   string          `json:"dropLocation"`
	AddonIDs       []string        `json:"addons,omitempty"`
	CouponCode     string          `json:"coupon,omitempty"`
	PaymentMode    PaymentMode     `json:"paymentMode"`
}

// Validate reports the first missing required field only.
func (d Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.FullName) == "":
		return ErrMissingFullName
	case strings.TrimSpace(d.Phone) == "":
		return ErrMissingPhone
	case strings.TrimSpace(d.PickupLocation) == "":
		return ErrMissingPickup
	case strings.TrimSpace(d.DropLocation) == "":
		return ErrMissingDrop
	}
	return nil
}

// Summary is everything the checkout page shows on load.
type Summary struct {
	Trip    tripctx.Context `json:"trip"`
	Draft   Draft           `json:"draft"`
	Totals  Totals          `json:"totals"`
	Options []PaymentOption `json:"paymentOptions"`
	Addons  []catalog.Addon `json:"addons"`
}

type PriceRequest struct {
	Trip        tripctx.Context
	AddonIDs    []string
	CouponCode  string
	PaymentMode string
}

type Pricing struct {
	Totals  Totals          `json:"totals"`
	Coupon  *CouponResult   `json:"coupon,omitempty"`
	Options []PaymentOption `json:"paymentOptions"`
}

// Confirmation is the placeholder result of proceeding; no booking is created.
type Confirmation struct {
	Reference   string      `json:"reference"`
	VehicleName string      `json:"vehicleName"`
	Total       types.Money `json:"total"`
	PayNow      types.Money `json:"payNow"`
	PaymentMode PaymentMode `json:"paymentMode"`
	Message     string      `json:"message"`
}
