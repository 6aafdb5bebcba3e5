// README: Trip request and quote shapes produced by the quote builder.
package pricing

import "gocab/internal/modules/catalog"

type TripType string

const (
	TripOneWay    TripType = "ONE WAY"
	TripRoundTrip TripType = "ROUND TRIP"
	TripLocal     TripType = "LOCAL"
	TripAirport   TripType = "AIRPORT"
)

// ParseTripType reports whether s names one of the four trip types.
func ParseTripType(s string) (TripType, bool) {
	switch t := TripType(s); t {
	case TripOneWay, TripRoundTrip, TripLocal, TripAirport:
		return t, true
	}
	return "", false
}

// IsOutstation is true for trip types priced by route distance.
func (t TripType) IsOutstation() bool {
	return t != TripLocal
}

type TripRequest struct {
	Type         TripType           `json:"tab"`
	Origin       string             `json:"origin,omitempty"`
	Destination  string             `json:"destination,omitempty"`
	City         string             `json:"city,omitempty"`
	LocalPackage catalog.PackageKey `json:"localPkg,omitempty"`
	PickupDate   string             `json:"pickupDate,omitempty"`
	PickupTime   string             `json:"pickupTime,omitempty"`
	ReturnDate   string             `json:"returnDate,omitempty"`
}

type OutstationQuote struct {
	VehicleKey  catalog.VehicleKey `json:"vehicle"`
	VehicleName string             `json:"vehicleName"`
	Price       int64              `json:"price"`
	DistanceKm  float64            `json:"distanceKm"`
}

type LocalQuote struct {
	VehicleKey    catalog.VehicleKey `json:"vehicle"`
	VehicleName   string             `json:"vehicleName"`
	PackageKey    catalog.PackageKey `json:"packageKey"`
	PackageLabel  string             `json:"packageLabel"`
	HoursIncluded int                `json:"hoursIncluded"`
	KmIncluded    int                `json:"kmIncluded"`
	BasePrice     int64              `json:"basePrice"`
	PostKmRate    int64              `json:"postKmRate"`
	PostHrRate    int64              `json:"postHrRate"`
}

type LocalGroup struct {
	Package catalog.LocalPackage `json:"package"`
	Quotes  []LocalQuote         `json:"quotes"`
}

// QuoteSet holds either Outstation quotes or Local groups, never both.
type QuoteSet struct {
	TripType      TripType           `json:"tab"`
	DistanceKm    float64            `json:"distanceKm,omitempty"`
	Outstation    []OutstationQuote  `json:"quotes,omitempty"`
	Local         []LocalGroup       `json:"packages,omitempty"`
	ActivePackage catalog.PackageKey `json:"activePackage,omitempty"`
}
