package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRateSource struct {
	overrides []RateOverride
	err       error
}

func (s stubRateSource) ListRates(context.Context) ([]RateOverride, error) {
	return s.overrides, s.err
}

func TestLoad_NilSourceUsesDefaults(t *testing.T) {
	c, err := Load(context.Background(), nil)
	require.NoError(t, err)
	sedan, err := c.Vehicle(VehicleSedan)
	require.NoError(t, err)
	assert.Equal(t, int64(599), sedan.MinFare)
}

func TestLoad_AppliesOverrides(t *testing.T) {
	src := stubRateSource{overrides: []RateOverride{{
		VehicleKey:    VehicleSedan,
		MinFare:       649,
		RatePerKm:     15,
		PackagePrices: map[PackageKey]int64{Package8h80km: 2299},
	}}}

	c, err := Load(context.Background(), src)
	require.NoError(t, err)

	sedan, err := c.Vehicle(VehicleSedan)
	require.NoError(t, err)
	assert.Equal(t, int64(649), sedan.MinFare)
	assert.Equal(t, 15.0, sedan.RatePerKm)
	assert.Equal(t, int64(200), sedan.BaseFare, "zero override keeps built-in value")
	assert.Equal(t, int64(2299), sedan.Local.BaseByPackage[Package8h80km])
	assert.Equal(t, int64(1399), sedan.Local.BaseByPackage[Package4h40km])

	// the built-in catalog is untouched
	def, _ := Default().Vehicle(VehicleSedan)
	assert.Equal(t, int64(599), def.MinFare)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(context.Background(), stubRateSource{overrides: []RateOverride{{VehicleKey: "TEMPO"}}})
	assert.ErrorIs(t, err, ErrUnknownVehicle)

	_, err = Load(context.Background(), stubRateSource{overrides: []RateOverride{{
		VehicleKey:    VehicleSUV,
		PackagePrices: map[PackageKey]int64{"PKG_24_240": 9999},
	}}})
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestLoad_SourceError(t *testing.T) {
	boom := errors.New("connection refused")
	_, err := Load(context.Background(), stubRateSource{err: boom})
	assert.ErrorIs(t, err, boom)
}
