// README: Catalog rate overrides backed by PostgreSQL.
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListRates reads every vehicle override together with its package prices.
func (s *Store) ListRates(ctx context.Context) ([]RateOverride, error) {
	rows, err := s.db.Query(ctx, `
        SELECT vehicle_key, name, rate_per_km, base_fare, min_fare, post_km_rate, post_hr_rate
        FROM vehicle_rates
        ORDER BY vehicle_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []RateOverride
	index := map[VehicleKey]int{}
	for rows.Next() {
		var o RateOverride
		var key string
		if err := rows.Scan(&key, &o.Name, &o.RatePerKm, &o.BaseFare, &o.MinFare, &o.PostKmRate, &o.PostHrRate); err != nil {
			return nil, err
		}
		o.VehicleKey = VehicleKey(key)
		o.PackagePrices = map[PackageKey]int64{}
		index[o.VehicleKey] = len(overrides)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	priceRows, err := s.db.Query(ctx, `
        SELECT vehicle_key, package_key, base_price
        FROM vehicle_package_prices`)
	if err != nil {
		return nil, err
	}
	defer priceRows.Close()

	for priceRows.Next() {
		var vehicle, pkg string
		var price int64
		if err := priceRows.Scan(&vehicle, &pkg, &price); err != nil {
			return nil, err
		}
		i, ok := index[VehicleKey(vehicle)]
		if !ok {
			overrides = append(overrides, RateOverride{
				VehicleKey:    VehicleKey(vehicle),
				PackagePrices: map[PackageKey]int64{},
			})
			i = len(overrides) - 1
			index[VehicleKey(vehicle)] = i
		}
		overrides[i].PackagePrices[PackageKey(pkg)] = price
	}
	return overrides, priceRows.Err()
}
