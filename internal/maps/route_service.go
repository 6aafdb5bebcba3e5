package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// RouteService resolves driving distances through the Directions API.
type RouteService struct {
	handle   *Handle
	region   string
	language string
}

// NewRouteService creates a RouteService on top of a shared handle.
func NewRouteService(h *Handle, region, language string) *RouteService {
	return &RouteService{handle: h, region: region, language: language}
}

// DrivingDistanceKm returns the length of the first suggested driving route.
// A route without a positive distance counts as a failure.
func (s *RouteService) DrivingDistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	client, err := s.handle.Ensure()
	if err != nil {
		return 0, err
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    s.language,
		Region:      s.region,
	}

	routes, _, err := client.Directions(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("directions failed: %s", apiStatus(err))
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("directions failed: %s", "ZERO_RESULTS")
	}

	leg := routes[0].Legs[0]
	if leg.Distance.Meters <= 0 {
		return 0, fmt.Errorf("directions failed: %s", "NO_DISTANCE")
	}
	return float64(leg.Distance.Meters) / 1000, nil
}

// apiStatus pulls the status code out of "maps: STATUS - message" errors and
// leaves anything else untouched.
func apiStatus(err error) string {
	msg := err.Error()
	rest, ok := strings.CutPrefix(msg, "maps: ")
	if !ok {
		return msg
	}
	status, _, _ := strings.Cut(rest, " - ")
	return status
}
