package pricing

import (
	"math"

	"gocab/internal/modules/catalog"
)

// OutstationFare prices a trip of distanceKm for v. distanceKm must be a
// finite, non-negative number; for round trips the caller passes the doubled
// distance. The result is never below v.MinFare.
func OutstationFare(distanceKm float64, v catalog.Vehicle) int64 {
	raw := float64(v.BaseFare) + distanceKm*v.RatePerKm
	return int64(math.Ceil(math.Max(raw, float64(v.MinFare))))
}

// LocalBasePrice is a straight table lookup; overage is billed at trip end.
func LocalBasePrice(v catalog.Vehicle, pkg catalog.PackageKey) (int64, bool) {
	p, ok := v.Local.BaseByPackage[pkg]
	return p, ok
}

func validDistance(km float64) bool {
	return !math.IsNaN(km) && !math.IsInf(km, 0) && km >= 0
}
