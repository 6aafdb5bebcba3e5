package pricing

import (
	"math"
	"testing"

	"gocab/internal/modules/catalog"
)

func TestOutstationFare(t *testing.T) {
	sedan, _ := catalog.Default().Vehicle(catalog.VehicleSedan)

	tests := []struct {
		name     string
		distance float64
		wantFare int64
	}{
		{
			name:     "Above minimum (50km -> 200 + 700)",
			distance: 50,
			wantFare: 900,
		},
		{
			name:     "Minimum fare floor (10km -> 340 < 599)",
			distance: 10,
			wantFare: 599,
		},
		{
			name:     "Zero distance yields minimum fare",
			distance: 0,
			wantFare: 599,
		},
		{
			name:     "Fractional distance rounds up (50.05km -> 900.7)",
			distance: 50.05,
			wantFare: 901,
		},
		{
			name:     "Just at the floor (28.5km -> 599)",
			distance: 28.5,
			wantFare: 599,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutstationFare(tt.distance, sedan); got != tt.wantFare {
				t.Errorf("OutstationFare(%v) = %v, want %v", tt.distance, got, tt.wantFare)
			}
		})
	}
}

func TestOutstationFare_FloorAndMonotonic(t *testing.T) {
	for _, v := range catalog.Default().Vehicles() {
		prev := int64(math.MinInt64)
		for d := 0.0; d <= 600; d += 0.37 {
			got := OutstationFare(d, v)
			if got < v.MinFare {
				t.Fatalf("%s at %.2fkm: fare %d below minimum %d", v.Key, d, got, v.MinFare)
			}
			if got < prev {
				t.Fatalf("%s at %.2fkm: fare %d decreased from %d", v.Key, d, got, prev)
			}
			prev = got
		}
	}
}

func TestLocalBasePrice(t *testing.T) {
	suv, _ := catalog.Default().Vehicle(catalog.VehicleSUV)

	price, ok := LocalBasePrice(suv, catalog.Package4h40km)
	if !ok || price != 1799 {
		t.Fatalf("LocalBasePrice(SUV, 4h) = %d, %v; want 1799, true", price, ok)
	}
	if _, ok := LocalBasePrice(suv, "PKG_1_10"); ok {
		t.Fatal("expected unknown package to miss")
	}
}

func TestValidDistance(t *testing.T) {
	cases := map[float64]bool{
		0:            true,
		12.5:         true,
		-1:           false,
		math.NaN():   false,
		math.Inf(1):  false,
		math.Inf(-1): false,
	}
	for km, want := range cases {
		if got := validDistance(km); got != want {
			t.Errorf("validDistance(%v) = %v, want %v", km, got, want)
		}
	}
}
