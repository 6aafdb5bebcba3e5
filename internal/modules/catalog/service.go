// README: Catalog loading: built-in reference data plus optional stored overrides.
package catalog

import (
	"context"
	"fmt"
)

// RateSource supplies rate overrides at start-up.
type RateSource interface {
	ListRates(ctx context.Context) ([]RateOverride, error)
}

// Load builds the process-wide catalog. A nil source yields the built-in
// catalog. Overrides may only adjust existing vehicles and packages; the set
// of vehicles and packages is closed.
func Load(ctx context.Context, src RateSource) (*Catalog, error) {
	if src == nil {
		return Default(), nil
	}
	overrides, err := src.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rate overrides: %w", err)
	}
	return Apply(Default(), overrides)
}

// Apply returns a new catalog with the overrides merged over base.
func Apply(base *Catalog, overrides []RateOverride) (*Catalog, error) {
	vehicles := base.Vehicles()
	packages := base.Packages()

	for _, o := range overrides {
		i := indexOfVehicle(vehicles, o.VehicleKey)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVehicle, o.VehicleKey)
		}
		v := &vehicles[i]
		if o.Name != "" {
			v.Name = o.Name
		}
		if o.RatePerKm > 0 {
			v.RatePerKm = o.RatePerKm
		}
		if o.BaseFare > 0 {
			v.BaseFare = o.BaseFare
		}
		if o.MinFare > 0 {
			v.MinFare = o.MinFare
		}
		if o.PostKmRate > 0 {
			v.Local.PostKmRate = o.PostKmRate
		}
		if o.PostHrRate > 0 {
			v.Local.PostHrRate = o.PostHrRate
		}
		for pkg, price := range o.PackagePrices {
			if !hasPackage(packages, pkg) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, pkg)
			}
			if price > 0 {
				v.Local.BaseByPackage[pkg] = price
			}
		}
	}

	return New(vehicles, packages, base.Addons())
}

func indexOfVehicle(vs []Vehicle, key VehicleKey) int {
	for i, v := range vs {
		if v.Key == key {
			return i
		}
	}
	return -1
}

func hasPackage(ps []LocalPackage, key PackageKey) bool {
	for _, p := range ps {
		if p.Key == key {
			return true
		}
	}
	return false
}
