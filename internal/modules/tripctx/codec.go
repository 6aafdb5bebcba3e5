package tripctx

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"gocab/internal/modules/catalog"
	"gocab/internal/modules/pricing"
	"gocab/internal/types"
)

var ErrUnsupportedVersion = errors.New("unsupported trip context version")

// Parse reads a context from query parameters. Missing or malformed values
// fall back to defaults; only an unknown version is an error.
func Parse(q url.Values) (Context, error) {
	if v := strings.TrimSpace(q.Get(KeyVersion)); v != "" && v != Version {
		return Context{}, ErrUnsupportedVersion
	}

	tab, ok := pricing.ParseTripType(strings.TrimSpace(q.Get(KeyTab)))
	if !ok {
		tab = DefaultTripType
	}
	pkg := catalog.PackageKey(strings.TrimSpace(q.Get(KeyLocalPackage)))
	if !pkg.Valid() {
		pkg = DefaultPackage
	}

	c := Context{
		Version: Version,
		Trip: pricing.TripRequest{
			Type:         tab,
			Origin:       text(q, KeyOrigin),
			Destination:  text(q, KeyDestination),
			City:         text(q, KeyCity),
			LocalPackage: pkg,
			PickupDate:   text(q, KeyPickupDate),
			PickupTime:   text(q, KeyPickupTime),
			ReturnDate:   text(q, KeyReturnDate),
		},
		Selection: Selection{
			VehicleKey:   catalog.VehicleKey(text(q, KeyVehicle)),
			VehicleName:  text(q, KeyVehicleName),
			Price:        price(q),
			DistanceKm:   number(q, KeyDistanceKm),
			PackageKey:   catalog.PackageKey(text(q, KeyPackageKey)),
			PackageLabel: text(q, KeyPackageLabel),
		},
	}
	if c.Selection.VehicleKey == "" {
		c.Selection.VehicleKey = DefaultVehicle
	}
	if c.Selection.VehicleName == "" {
		c.Selection.VehicleName = DefaultVehicleName
	}
	return c, nil
}

// Values encodes c. Route keys are written for outstation trips and city keys
// for local ones; selection keys only once a vehicle was picked.
func (c Context) Values() url.Values {
	q := url.Values{}
	q.Set(KeyVersion, Version)

	tab := c.Trip.Type
	if tab == "" {
		tab = DefaultTripType
	}
	q.Set(KeyTab, string(tab))
	q.Set(KeyPickupDate, c.Trip.PickupDate)
	q.Set(KeyPickupTime, c.Trip.PickupTime)
	q.Set(KeyReturnDate, c.Trip.ReturnDate)

	if tab == pricing.TripLocal {
		q.Set(KeyCity, c.Trip.City)
		pkg := c.Trip.LocalPackage
		if pkg == "" {
			pkg = DefaultPackage
		}
		q.Set(KeyLocalPackage, string(pkg))
	} else {
		q.Set(KeyOrigin, c.Trip.Origin)
		q.Set(KeyDestination, c.Trip.Destination)
	}

	if !c.HasSelection() {
		return q
	}
	s := c.Selection
	q.Set(KeyVehicle, string(s.VehicleKey))
	q.Set(KeyVehicleName, s.VehicleName)
	q.Set(KeyPrice, strconv.FormatInt(s.Price, 10))
	if tab == pricing.TripLocal {
		if s.PackageKey != "" {
			q.Set(KeyPackageKey, string(s.PackageKey))
		}
		if s.PackageLabel != "" {
			q.Set(KeyPackageLabel, s.PackageLabel)
		}
	} else {
		q.Set(KeyDistanceKm, strconv.FormatFloat(s.DistanceKm, 'f', -1, 64))
	}
	return q
}

// Query is the encoded form of c, ready to append after "?".
func (c Context) Query() string {
	return c.Values().Encode()
}

func text(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

// MaxPrice bounds a carried fare. Larger values are treated as malformed so
// totals built on top of them cannot overflow.
const MaxPrice = 100_000_000

func price(q url.Values) int64 {
	n := number(q, KeyPrice)
	if n > MaxPrice {
		return 0
	}
	return types.RoundRupees(n)
}

func number(q url.Values, key string) float64 {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
