package tripctx

import (
	"strings"

	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
)

type AirportDirection string

const (
	DropToAirport     AirportDirection = "Drop to Airport"
	PickupFromAirport AirportDirection = "Pickup from Airport"
)

// SearchForm is what the home page search box submits. From and To hold the
// two address fields of the active tab; for airport trips these are the
// pickup field and the drop field whichever way the trip goes.
type SearchForm struct {
	Tab              string           `json:"tab"`
	From             string           `json:"from"`
	To               string           `json:"to"`
	City             string           `json:"city"`
	LocalPackage     string           `json:"localPkg"`
	AirportDirection AirportDirection `json:"airportTrip"`
	PickupDate       string           `json:"pickupDate"`
	PickupTime       string           `json:"pickupTime"`
	ReturnDate       string           `json:"returnDate"`
}

// FromSearch turns a submitted search into the context handed to the cab
// list. It does not validate; the quote builder does.
func FromSearch(f SearchForm) Context {
	tab, ok := pricing.ParseTripType(strings.TrimSpace(f.Tab))
	if !ok {
		tab = DefaultTripType
	}

	trip := pricing.TripRequest{
		Type:       tab,
		PickupDate: strings.TrimSpace(f.PickupDate),
		PickupTime: strings.TrimSpace(f.PickupTime),
		ReturnDate: strings.TrimSpace(f.ReturnDate),
	}

	switch tab {
	case pricing.TripLocal:
		trip.City = strings.TrimSpace(f.City)
		trip.LocalPackage = catalog.PackageKey(strings.TrimSpace(f.LocalPackage))
		if !trip.LocalPackage.Valid() {
			trip.LocalPackage = DefaultPackage
		}
	default:
		// Airport trips route pickup field -> drop field in both directions.
		trip.Origin, trip.Destination = strings.TrimSpace(f.From), strings.TrimSpace(f.To)
	}

	return New(trip)
}
