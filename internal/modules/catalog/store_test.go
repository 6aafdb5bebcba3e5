// README: Postgres-backed override store tests; skipped unless GOCAB_TEST_DSN is set.
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ListRates(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO vehicle_rates (vehicle_key, name, rate_per_km, base_fare, min_fare, post_km_rate, post_hr_rate)
        VALUES ('SUV', 'SUV XL', 19, 260, 849, 19, 210)`)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `INSERT INTO vehicle_package_prices (vehicle_key, package_key, base_price)
        VALUES ('SUV', 'PKG_4_40', 1899), ('INNOVA', 'PKG_8_80', 3599)`)
	require.NoError(t, err)

	overrides, err := NewStore(db).ListRates(ctx)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	c, err := Apply(Default(), overrides)
	require.NoError(t, err)

	suv, _ := c.Vehicle(VehicleSUV)
	assert.Equal(t, "SUV XL", suv.Name)
	assert.Equal(t, int64(849), suv.MinFare)
	assert.Equal(t, int64(1899), suv.Local.BaseByPackage[Package4h40km])

	innova, _ := c.Vehicle(VehicleInnova)
	assert.Equal(t, int64(3599), innova.Local.BaseByPackage[Package8h80km])
	assert.Equal(t, int64(999), innova.MinFare)
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("GOCAB_TEST_DSN")
	if dsn == "" {
		t.Skip("GOCAB_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..", "..")
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_catalog.sql"))
	require.NoError(t, err)
	for _, stmt := range strings.Split(string(content), ";") {
		if strings.TrimSpace(stripComments(stmt)) == "" {
			continue
		}
		_, err := db.Exec(ctx, stmt)
		require.NoError(t, err)
	}

	_, err = db.Exec(ctx, "TRUNCATE TABLE vehicle_rates, vehicle_package_prices")
	require.NoError(t, err)
	return db
}

func stripComments(sql string) string {
	var b strings.Builder
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
