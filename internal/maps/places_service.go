package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

var ErrEmptyInput = errors.New("input is required")

type PlaceKind string

const (
	KindAddress PlaceKind = "address"
	KindCity    PlaceKind = "city"
)

// Suggestion is one autocomplete prediction.
type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

// PlacesService handles autocomplete and place resolution.
type PlacesService struct {
	handle   *Handle
	country  string
	language string
}

// NewPlacesService restricts suggestions to country when it is non-empty.
func NewPlacesService(h *Handle, country, language string) *PlacesService {
	return &PlacesService{handle: h, country: strings.ToLower(country), language: language}
}

// Autocomplete offers suggestions for a partial input. KindCity limits them
// to cities.
func (s *PlacesService) Autocomplete(ctx context.Context, input string, kind PlaceKind) ([]Suggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	client, err := s.handle.Ensure()
	if err != nil {
		return nil, err
	}

	r := &maps.PlaceAutocompleteRequest{
		Input:    input,
		Language: s.language,
	}
	if s.country != "" {
		r.Components = map[maps.Component][]string{maps.ComponentCountry: {s.country}}
	}
	if kind == KindCity {
		r.Types = maps.AutocompletePlaceTypeCities
	}

	resp, err := client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Suggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Suggestion{Description: p.Description, PlaceID: p.PlaceID})
	}
	return out, nil
}

// Resolve returns the canonical address for placeID, or the place name when
// no formatted address is known.
func (s *PlacesService) Resolve(ctx context.Context, placeID string) (string, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return "", ErrEmptyInput
	}
	client, err := s.handle.Ensure()
	if err != nil {
		return "", err
	}

	res, err := client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: s.language,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskName,
		},
	})
	if err != nil {
		return "", fmt.Errorf("places api error: %w", err)
	}
	if res.FormattedAddress != "" {
		return res.FormattedAddress, nil
	}
	return res.Name, nil
}
