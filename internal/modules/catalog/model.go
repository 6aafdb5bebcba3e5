// README: Vehicle, local package and add-on reference data types.
package catalog

type VehicleKey string

const (
	VehicleHatchback VehicleKey = "HATCHBACK"
	VehicleSedan     VehicleKey = "SEDAN"
	VehicleSUV       VehicleKey = "SUV"
	VehicleInnova    VehicleKey = "INNOVA"
)

type PackageKey string

const (
	Package4h40km   PackageKey = "PKG_4_40"
	Package8h80km   PackageKey = "PKG_8_80"
	Package12h120km PackageKey = "PKG_12_120"
)

// Valid reports whether k is one of the three rental slabs.
func (k PackageKey) Valid() bool {
	switch k {
	case Package4h40km, Package8h80km, Package12h120km:
		return true
	}
	return false
}

// LocalPackage is a fixed-duration, fixed-distance rental slab.
type LocalPackage struct {
	Key           PackageKey `json:"key"`
	Label         string     `json:"label"`
	HoursIncluded int        `json:"hoursIncluded"`
	KmIncluded    int        `json:"kmIncluded"`
}

// LocalPricing holds the flat price per package and the overage rates.
// Overage rates are informational; they are billed at trip end.
type LocalPricing struct {
	BaseByPackage map[PackageKey]int64 `json:"baseByPackage"`
	PostKmRate    int64                `json:"postKmRate"`
	PostHrRate    int64                `json:"postHrRate"`
}

type Vehicle struct {
	Key       VehicleKey   `json:"key"`
	Name      string       `json:"name"`
	RatePerKm float64      `json:"ratePerKm"`
	BaseFare  int64        `json:"baseFare"`
	MinFare   int64        `json:"minFare"`
	Local     LocalPricing `json:"local"`
}

// Addon is an optional extra. A zero PriceValue means the price is a per-km
// note settled on the final bill.
type Addon struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PriceLabel string `json:"priceLabel"`
	PriceValue int64  `json:"priceValue"`
	Note       string `json:"note,omitempty"`
	Tag        string `json:"tag,omitempty"`
}

// RateOverride replaces the outstation and local rates of one catalog vehicle.
// Zero-valued fields keep the built-in value.
type RateOverride struct {
	VehicleKey    VehicleKey
	Name          string
	RatePerKm     float64
	BaseFare      int64
	MinFare       int64
	PostKmRate    int64
	PostHrRate    int64
	PackagePrices map[PackageKey]int64
}
