// README: Quote builder: per-vehicle outstation quotes or local package groups.
package pricing

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gocab/internal/modules/catalog"
)

// The validation messages are shown to the user as written.
var (
	ErrMissingRoute        = errors.New("Please fill Pickup and Drop correctly.")
	ErrMissingCity         = errors.New("Please enter/select a city.")
	ErrDistanceUnavailable = errors.New("route distance unavailable")
)

// DistanceError carries the route collaborator's failure. Its message is the
// collaborator's message unchanged so it can be shown to the user.
type DistanceError struct {
	Err error
}

func (e *DistanceError) Error() string { return e.Err.Error() }

func (e *DistanceError) Unwrap() error { return e.Err }

func (e *DistanceError) Is(target error) bool { return target == ErrDistanceUnavailable }

// DistanceProvider resolves the driving distance of one suggested route.
type DistanceProvider interface {
	DrivingDistanceKm(ctx context.Context, origin, destination string) (float64, error)
}

type Service struct {
	catalog  *catalog.Catalog
	distance DistanceProvider
}

func NewService(c *catalog.Catalog, distance DistanceProvider) *Service {
	return &Service{catalog: c, distance: distance}
}

// Build quotes every catalog vehicle for req. Outstation trips make exactly
// one distance call; nothing is retried.
func (s *Service) Build(ctx context.Context, req TripRequest) (*QuoteSet, error) {
	if req.Type == TripLocal {
		return s.buildLocal(req)
	}
	return s.buildOutstation(ctx, req)
}

func (s *Service) buildLocal(req TripRequest) (*QuoteSet, error) {
	if strings.TrimSpace(req.City) == "" {
		return nil, ErrMissingCity
	}

	active := req.LocalPackage
	if _, err := s.catalog.Package(active); err != nil {
		active = catalog.Package4h40km
	}

	vehicles := s.catalog.Vehicles()
	packages := s.catalog.Packages()
	groups := make([]LocalGroup, 0, len(packages))
	for _, pkg := range packages {
		quotes := make([]LocalQuote, 0, len(vehicles))
		for _, v := range vehicles {
			price, _ := LocalBasePrice(v, pkg.Key)
			quotes = append(quotes, LocalQuote{
				VehicleKey:    v.Key,
				VehicleName:   v.Name,
				PackageKey:    pkg.Key,
				PackageLabel:  pkg.Label,
				HoursIncluded: pkg.HoursIncluded,
				KmIncluded:    pkg.KmIncluded,
				BasePrice:     price,
				PostKmRate:    v.Local.PostKmRate,
				PostHrRate:    v.Local.PostHrRate,
			})
		}
		slices.SortStableFunc(quotes, func(a, b LocalQuote) int {
			return cmp.Compare(a.BasePrice, b.BasePrice)
		})
		groups = append(groups, LocalGroup{Package: pkg, Quotes: quotes})
	}

	return &QuoteSet{TripType: TripLocal, Local: groups, ActivePackage: active}, nil
}

func (s *Service) buildOutstation(ctx context.Context, req TripRequest) (*QuoteSet, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return nil, ErrMissingRoute
	}
	if s.distance == nil {
		return nil, &DistanceError{Err: errors.New("route distance service not configured")}
	}

	km, err := s.distance.DrivingDistanceKm(ctx, origin, destination)
	// the caller may have gone away while the collaborator was working
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, &DistanceError{Err: err}
	}
	if !validDistance(km) {
		return nil, &DistanceError{Err: fmt.Errorf("directions failed: invalid distance %v", km)}
	}

	if req.Type == TripRoundTrip {
		km *= 2
	}

	vehicles := s.catalog.Vehicles()
	quotes := make([]OutstationQuote, 0, len(vehicles))
	for _, v := range vehicles {
		quotes = append(quotes, OutstationQuote{
			VehicleKey:  v.Key,
			VehicleName: v.Name,
			Price:       OutstationFare(km, v),
			DistanceKm:  km,
		})
	}
	slices.SortStableFunc(quotes, func(a, b OutstationQuote) int {
		return cmp.Compare(a.Price, b.Price)
	})

	tripType := req.Type
	if tripType == "" {
		tripType = TripOneWay
	}
	return &QuoteSet{TripType: tripType, DistanceKm: km, Outstation: quotes}, nil
}
