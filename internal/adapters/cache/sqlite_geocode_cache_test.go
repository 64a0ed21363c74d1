package cache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"route-optimizer-service/internal/domain"
)

func setupSqliteCache(t *testing.T) *SqliteGeocodeCache {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache := NewSqliteGeocodeCache(db)
	require.NoError(t, cache.EnsureSchema(context.Background()))
	return cache
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	cache := setupSqliteCache(t)
	ctx := context.Background()

	stored := map[string]domain.Coordinates{
		"645 W Grand River Ave, East Lansing, MI 48823": {Lon: -84.4839, Lat: 42.7325},
		"100 Renaissance Center, Detroit, MI 48243":     {Lon: -83.0399, Lat: 42.3293},
	}
	require.NoError(t, cache.PutMany(ctx, stored))

	got, err := cache.GetMany(ctx, []string{
		"645 W Grand River Ave, East Lansing, MI 48823",
		"100 Renaissance Center, Detroit, MI 48243",
		"unknown address",
	})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, stored["645 W Grand River Ave, East Lansing, MI 48823"], got["645 W Grand River Ave, East Lansing, MI 48823"])
	_, ok := got["unknown address"]
	assert.False(t, ok, "missing entries must be absent, not zero-valued")
}

func TestSqliteGeocodeCacheOverwrites(t *testing.T) {
	cache := setupSqliteCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutMany(ctx, map[string]domain.Coordinates{
		"addr": {Lon: 1, Lat: 2},
	}))
	require.NoError(t, cache.PutMany(ctx, map[string]domain.Coordinates{
		"addr": {Lon: 3, Lat: 4},
	}))

	got, err := cache.GetMany(ctx, []string{"addr"})
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinates{Lon: 3, Lat: 4}, got["addr"])
}

func TestSqliteGeocodeCacheEmptyInputs(t *testing.T) {
	cache := setupSqliteCache(t)
	ctx := context.Background()

	got, err := cache.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = cache.GetMany(ctx, []string{"", "   "})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, cache.PutMany(ctx, nil))
}

func TestSqliteGeocodeCacheRejectsEmptyKey(t *testing.T) {
	cache := setupSqliteCache(t)

	err := cache.PutMany(context.Background(), map[string]domain.Coordinates{
		"   ": {Lon: 1, Lat: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty address key")
}

func TestSqliteGeocodeCacheDeduplicatesLookups(t *testing.T) {
	cache := setupSqliteCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutMany(ctx, map[string]domain.Coordinates{
		"addr": {Lon: 1, Lat: 2},
	}))

	got, err := cache.GetMany(ctx, []string{"addr", "addr", " addr "})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.Coordinates{Lon: 1, Lat: 2}, got["addr"])
}
