package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EveryVehiclePricesEveryPackage(t *testing.T) {
	c := Default()
	require.Len(t, c.Vehicles(), 4)
	require.Len(t, c.Packages(), 3)

	for _, v := range c.Vehicles() {
		for _, p := range c.Packages() {
			price, ok := v.Local.BaseByPackage[p.Key]
			assert.Truef(t, ok, "%s missing price for %s", v.Key, p.Key)
			assert.Positive(t, price)
		}
	}
}

func TestDefault_CatalogOrder(t *testing.T) {
	var keys []VehicleKey
	for _, v := range Default().Vehicles() {
		keys = append(keys, v.Key)
	}
	assert.Equal(t, []VehicleKey{VehicleHatchback, VehicleSedan, VehicleSUV, VehicleInnova}, keys)
}

func TestVehicle_Lookup(t *testing.T) {
	c := Default()

	suv, err := c.Vehicle(VehicleSUV)
	require.NoError(t, err)
	assert.Equal(t, int64(1799), suv.Local.BaseByPackage[Package4h40km])

	_, err = c.Vehicle("LIMO")
	assert.ErrorIs(t, err, ErrUnknownVehicle)
}

func TestVehicles_ReturnsCopies(t *testing.T) {
	c := Default()
	vs := c.Vehicles()
	vs[0].MinFare = 1
	vs[0].Local.BaseByPackage[Package4h40km] = 1

	again, err := c.Vehicle(VehicleHatchback)
	require.NoError(t, err)
	assert.Equal(t, int64(499), again.MinFare)
	assert.Equal(t, int64(1299), again.Local.BaseByPackage[Package4h40km])
}

func TestNew_RejectsMissingPackagePrice(t *testing.T) {
	vehicles := Default().Vehicles()
	delete(vehicles[2].Local.BaseByPackage, Package12h120km)

	_, err := New(vehicles, Default().Packages(), nil)
	assert.True(t, errors.Is(err, ErrIncompleteRates), "got %v", err)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	vehicles := Default().Vehicles()
	vehicles = append(vehicles, vehicles[0])
	_, err := New(vehicles, Default().Packages(), nil)
	assert.Error(t, err)

	packages := append(Default().Packages(), Default().Packages()[0])
	_, err = New(Default().Vehicles(), packages, nil)
	assert.Error(t, err)
}

func TestPackage_Lookup(t *testing.T) {
	p, err := Default().Package(Package8h80km)
	require.NoError(t, err)
	assert.Equal(t, "8 hrs | 80 km", p.Label)
	assert.Equal(t, 8, p.HoursIncluded)
	assert.Equal(t, 80, p.KmIncluded)

	_, err = Default().Package("PKG_24_240")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestSelectAddons(t *testing.T) {
	c := Default()

	got, err := c.SelectAddons([]string{"newcar", "expressway", "expressway"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "expressway", got[0].ID)
	assert.Equal(t, "newcar", got[1].ID)

	none, err := c.SelectAddons(nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = c.SelectAddons([]string{"helicopter"})
	assert.ErrorIs(t, err, ErrUnknownAddon)
}

func TestAddons_DieselIsInformationalOnly(t *testing.T) {
	got, err := Default().SelectAddons([]string{"diesel"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].PriceValue)
	assert.NotEmpty(t, got[0].Note)
}
