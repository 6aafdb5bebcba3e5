// README: Checkout service: summary, live totals and the placeholder proceed step.
package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"gocab/internal/modules/catalog"
	"gocab/internal/modules/tripctx"
	"gocab/internal/types"
)

type Service struct {
	catalog *catalog.Catalog
	coupons CouponService
	log     logrus.FieldLogger
}

func NewService(c *catalog.Catalog, coupons CouponService, log logrus.FieldLogger) *Service {
	if coupons == nil {
		coupons = DefaultCoupons()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{catalog: c, coupons: coupons, log: log}
}

// Summary pre-fills the checkout form from the carried trip.
func (s *Service) Summary(tc tripctx.Context) (*Summary, error) {
	if _, err := s.catalog.Vehicle(tc.Selection.VehicleKey); err != nil {
		return nil, err
	}

	draft := Draft{
		Trip:           tc,
		PickupLocation: tc.Trip.Origin,
		DropLocation:   tc.Trip.Destination,
		PaymentMode:    DefaultPaymentMode,
	}
	totals := ComputeTotals(tc.Selection.Price, nil, 0, DefaultPaymentMode)
	return &Summary{
		Trip:    tc,
		Draft:   draft,
		Totals:  totals,
		Options: PaymentOptions(totals.GrandTotal),
		Addons:  s.catalog.Addons(),
	}, nil
}

// ApplyCoupon looks a code up without pricing anything.
func (s *Service) ApplyCoupon(ctx context.Context, code string) (CouponResult, error) {
	return s.coupons.Lookup(ctx, code)
}

// Price recomputes the totals for the current checkout selections. The
// discount always comes from the coupon lookup.
func (s *Service) Price(ctx context.Context, req PriceRequest) (*Pricing, error) {
	mode, err := ParsePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, err
	}
	totals, coupon, err := s.totals(ctx, req.Trip, req.AddonIDs, req.CouponCode, mode)
	if err != nil {
		return nil, err
	}
	return &Pricing{Totals: totals, Coupon: coupon, Options: PaymentOptions(totals.GrandTotal)}, nil
}

// Proceed validates the draft and returns a confirmation. Nothing is stored
// and nothing is charged.
func (s *Service) Proceed(ctx context.Context, d Draft) (*Confirmation, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	mode, err := ParsePaymentMode(string(d.PaymentMode))
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.Vehicle(d.Trip.Selection.VehicleKey); err != nil {
		return nil, err
	}
	totals, _, err := s.totals(ctx, d.Trip, d.AddonIDs, d.CouponCode, mode)
	if err != nil {
		return nil, err
	}

	ref := uuid.NewString()
	vehicleName := d.Trip.Selection.VehicleName
	s.log.WithFields(logrus.Fields{
		"reference":   ref,
		"tab":         d.Trip.Trip.Type,
		"vehicle":     d.Trip.Selection.VehicleKey,
		"grand_total": totals.GrandTotal,
		"pay_now":     totals.PayNow,
		"mode":        mode,
	}).Info("booking proceed")

	return &Confirmation{
		Reference:   ref,
		VehicleName: vehicleName,
		Total:       types.INR(totals.GrandTotal),
		PayNow:      types.INR(totals.PayNow),
		PaymentMode: mode,
		Message: fmt.Sprintf("Proceeding...\n\nVehicle: %s\nTotal: %s\nPay now: %s\nPayment: %s",
			vehicleName, types.FormatINR(totals.GrandTotal), types.FormatINR(totals.PayNow), mode),
	}, nil
}

func (s *Service) totals(ctx context.Context, tc tripctx.Context, addonIDs []string, code string, mode PaymentMode) (Totals, *CouponResult, error) {
	addons, err := s.catalog.SelectAddons(addonIDs)
	if err != nil {
		return Totals{}, nil, err
	}

	var (
		discount int64
		coupon   *CouponResult
	)
	if code != "" {
		res, err := s.coupons.Lookup(ctx, code)
		if err != nil {
			return Totals{}, nil, fmt.Errorf("coupon lookup: %w", err)
		}
		discount = res.Discount
		coupon = &res
	}
	return ComputeTotals(tc.Selection.Price, addons, discount, mode), coupon, nil
}
