// README: Trip context carried between the search, cab-selection and booking pages.
package tripctx

import (
	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
)

// Version is written under KeyVersion by Values.
const Version = "1"

// Query parameter keys.
const (
	KeyVersion      = "v"
	KeyTab          = "tab"
	KeyOrigin       = "origin"
	KeyDestination  = "destination"
	KeyPickupDate   = "pickupDate"
	KeyPickupTime   = "pickupTime"
	KeyReturnDate   = "returnDate"
	KeyCity         = "city"
	KeyLocalPackage = "localPkg"
	KeyVehicle      = "vehicle"
	KeyVehicleName  = "vehicleName"
	KeyPrice        = "price"
	KeyDistanceKm   = "distanceKm"
	KeyPackageLabel = "packageLabel"
	KeyPackageKey   = "packageKey"
)

const (
	DefaultTripType    = pricing.TripOneWay
	DefaultPackage     = catalog.Package4h40km
	DefaultVehicle     = catalog.VehicleSedan
	DefaultVehicleName = "Sedan"
)

// Selection is the quote the user picked on the cab list.
type Selection struct {
	VehicleKey   catalog.VehicleKey `json:"vehicle"`
	VehicleName  string             `json:"vehicleName"`
	Price        int64              `json:"price"`
	DistanceKm   float64            `json:"distanceKm,omitempty"`
	PackageKey   catalog.PackageKey `json:"packageKey,omitempty"`
	PackageLabel string             `json:"packageLabel,omitempty"`
}

type Context struct {
	Version   string              `json:"v"`
	Trip      pricing.TripRequest `json:"trip"`
	Selection Selection           `json:"selection"`
}

// New starts a context for a fresh search.
func New(trip pricing.TripRequest) Context {
	return Context{Version: Version, Trip: trip}
}

// HasSelection reports whether a vehicle was picked.
func (c Context) HasSelection() bool {
	return c.Selection.VehicleKey != ""
}

// WithOutstationQuote returns a copy of c carrying q as the selection.
func (c Context) WithOutstationQuote(q pricing.OutstationQuote) Context {
	c.Selection = Selection{
		VehicleKey:  q.VehicleKey,
		VehicleName: q.VehicleName,
		Price:       q.Price,
		DistanceKm:  q.DistanceKm,
	}
	return c
}

// WithLocalQuote returns a copy of c carrying q as the selection. The trip's
// package follows the picked quote.
func (c Context) WithLocalQuote(q pricing.LocalQuote) Context {
	c.Selection = Selection{
		VehicleKey:   q.VehicleKey,
		VehicleName:  q.VehicleName,
		Price:        q.BasePrice,
		PackageKey:   q.PackageKey,
		PackageLabel: q.PackageLabel,
	}
	c.Trip.LocalPackage = q.PackageKey
	return c
}
