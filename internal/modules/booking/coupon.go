package booking

import (
	"context"
	"strings"

	"gocab/internal/types"
)

// CouponResult is always returned for a lookup; an unknown code is not an error.
type CouponResult struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"`
	Message  string `json:"message"`
}

// CouponService looks up flat discounts by code.
type CouponService interface {
	Lookup(ctx context.Context, code string) (CouponResult, error)
}

// StaticCoupons is a fixed in-memory table standing in for a coupon backend.
type StaticCoupons map[string]int64

// DefaultCoupons are the codes advertised on the site.
func DefaultCoupons() StaticCoupons {
	return StaticCoupons{"GOCAB50": 50, "GOCAB100": 100}
}

// Lookup trims and upper-cases code before matching.
func (s StaticCoupons) Lookup(_ context.Context, code string) (CouponResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CouponResult{Message: "Enter a coupon code."}, nil
	}
	discount, ok := s[code]
	if !ok {
		return CouponResult{Code: code, Message: "Invalid coupon."}, nil
	}
	return CouponResult{
		Code:     code,
		Valid:    true,
		Discount: discount,
		Message:  "Coupon applied: " + types.FormatINR(discount) + " off",
	}, nil
}
