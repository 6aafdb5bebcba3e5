// README: Immutable catalog shared by quoting and booking.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVehicle  = errors.New("unknown vehicle")
	ErrUnknownPackage  = errors.New("unknown local package")
	ErrUnknownAddon    = errors.New("unknown add-on")
	ErrIncompleteRates = errors.New("incomplete vehicle rates")
)

var defaultPackages = []LocalPackage{
	{Key: Package4h40km, Label: "4 hrs | 40 km", HoursIncluded: 4, KmIncluded: 40},
	{Key: Package8h80km, Label: "8 hrs | 80 km", HoursIncluded: 8, KmIncluded: 80},
	{Key: Package12h120km, Label: "12 hrs | 120 km", HoursIncluded: 12, KmIncluded: 120},
}

var defaultVehicles = []Vehicle{
	{
		Key:       VehicleHatchback,
		Name:      "Hatchback",
		RatePerKm: 12,
		BaseFare:  150,
		MinFare:   499,
		Local: LocalPricing{
			BaseByPackage: map[PackageKey]int64{Package4h40km: 1299, Package8h80km: 1999, Package12h120km: 2699},
			PostKmRate:    12,
			PostHrRate:    120,
		},
	},
	{
		Key:       VehicleSedan,
		Name:      "Sedan",
		RatePerKm: 14,
		BaseFare:  200,
		MinFare:   599,
		Local: LocalPricing{
			BaseByPackage: map[PackageKey]int64{Package4h40km: 1399, Package8h80km: 2199, Package12h120km: 2999},
			PostKmRate:    14,
			PostHrRate:    150,
		},
	},
	{
		Key:       VehicleSUV,
		Name:      "SUV",
		RatePerKm: 18,
		BaseFare:  250,
		MinFare:   799,
		Local: LocalPricing{
			BaseByPackage: map[PackageKey]int64{Package4h40km: 1799, Package8h80km: 2799, Package12h120km: 3899},
			PostKmRate:    18,
			PostHrRate:    200,
		},
	},
	{
		Key:       VehicleInnova,
		Name:      "Innova / Crysta",
		RatePerKm: 22,
		BaseFare:  300,
		MinFare:   999,
		Local: LocalPricing{
			BaseByPackage: map[PackageKey]int64{Package4h40km: 2299, Package8h80km: 3499, Package12h120km: 4799},
			PostKmRate:    22,
			PostHrRate:    250,
		},
	},
}

var defaultAddons = []Addon{
	{ID: "expressway", Title: "Expressway", PriceLabel: "₹415", PriceValue: 415, Tag: "Most Popular"},
	{ID: "luggage", Title: "Cab with Luggage Carrier", PriceLabel: "₹149", PriceValue: 149},
	{ID: "diesel", Title: "Diesel Car Guarantee", PriceLabel: "₹1.1/km", PriceValue: 0, Note: "Charged per km (shown at final bill)"},
	{ID: "newcar", Title: "New Car Promise (2023 or newer)", PriceLabel: "₹249", PriceValue: 249},
	{ID: "language", Title: "Driver who knows your language", PriceLabel: "₹199", PriceValue: 199},
}

// Catalog is built once at start-up and never mutated. Accessors hand out
// copies so callers cannot change shared state.
type Catalog struct {
	vehicles []Vehicle
	packages []LocalPackage
	addons   []Addon
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultVehicles, defaultPackages, defaultAddons)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}

// New validates and deep-copies the given reference data. Every package must
// be priced for every vehicle, and keys must be unique.
func New(vehicles []Vehicle, packages []LocalPackage, addons []Addon) (*Catalog, error) {
	if len(vehicles) == 0 || len(packages) == 0 {
		return nil, fmt.Errorf("%w: catalog needs vehicles and packages", ErrIncompleteRates)
	}

	pkgSeen := make(map[PackageKey]bool, len(packages))
	for _, p := range packages {
		if pkgSeen[p.Key] {
			return nil, fmt.Errorf("duplicate package %s", p.Key)
		}
		pkgSeen[p.Key] = true
	}

	vehSeen := make(map[VehicleKey]bool, len(vehicles))
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if vehSeen[v.Key] {
			return nil, fmt.Errorf("duplicate vehicle %s", v.Key)
		}
		vehSeen[v.Key] = true
		if v.MinFare < 0 || v.BaseFare < 0 || v.RatePerKm < 0 {
			return nil, fmt.Errorf("%w: negative outstation rate for %s", ErrIncompleteRates, v.Key)
		}
		for _, p := range packages {
			if _, ok := v.Local.BaseByPackage[p.Key]; !ok {
				return nil, fmt.Errorf("%w: %s has no price for %s", ErrIncompleteRates, v.Key, p.Key)
			}
		}
		out = append(out, copyVehicle(v))
	}

	addonSeen := make(map[string]bool, len(addons))
	for _, a := range addons {
		if addonSeen[a.ID] {
			return nil, fmt.Errorf("duplicate add-on %s", a.ID)
		}
		addonSeen[a.ID] = true
	}

	return &Catalog{
		vehicles: out,
		packages: append([]LocalPackage(nil), packages...),
		addons:   append([]Addon(nil), addons...),
	}, nil
}

// Vehicles returns vehicles in catalog order.
func (c *Catalog) Vehicles() []Vehicle {
	out := make([]Vehicle, len(c.vehicles))
	for i, v := range c.vehicles {
		out[i] = copyVehicle(v)
	}
	return out
}

func (c *Catalog) Vehicle(key VehicleKey) (Vehicle, error) {
	for _, v := range c.vehicles {
		if v.Key == key {
			return copyVehicle(v), nil
		}
	}
	return Vehicle{}, ErrUnknownVehicle
}

// Packages returns local packages in catalog order.
func (c *Catalog) Packages() []LocalPackage {
	return append([]LocalPackage(nil), c.packages...)
}

func (c *Catalog) Package(key PackageKey) (LocalPackage, error) {
	for _, p := range c.packages {
		if p.Key == key {
			return p, nil
		}
	}
	return LocalPackage{}, ErrUnknownPackage
}

func (c *Catalog) Addons() []Addon {
	return append([]Addon(nil), c.addons...)
}

// SelectAddons resolves ids in catalog order. Repeated ids count once.
func (c *Catalog) SelectAddons(ids []string) ([]Addon, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Addon, 0, len(want))
	for _, a := range c.addons {
		if want[a.ID] {
			out = append(out, a)
			delete(want, a.ID)
		}
	}
	for id := range want {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAddon, id)
	}
	return out, nil
}

func copyVehicle(v Vehicle) Vehicle {
	prices := make(map[PackageKey]int64, len(v.Local.BaseByPackage))
	for k, p := range v.Local.BaseByPackage {
		prices[k] = p
	}
	v.Local.BaseByPackage = prices
	return v
}
