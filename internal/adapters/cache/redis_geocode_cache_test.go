package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

func setupRedisCache(t *testing.T) (*RedisGeocodeCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, time.Hour), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	cache, _ := setupRedisCache(t)
	ctx := context.Background()

	stored := map[string]domain.Coordinates{
		"124 W Allegan St, Lansing, MI 48933": {Lon: -84.5553, Lat: 42.7336},
	}
	require.NoError(t, cache.PutMany(ctx, stored))

	got, err := cache.GetMany(ctx, []string{
		"124 W Allegan St, Lansing, MI 48933",
		"unknown address",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, stored["124 W Allegan St, Lansing, MI 48933"], got["124 W Allegan St, Lansing, MI 48933"])
}

func TestRedisGeocodeCacheSetsTTL(t *testing.T) {
	cache, mr := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutMany(ctx, map[string]domain.Coordinates{
		"addr": {Lon: 1, Lat: 2},
	}))

	ttl := mr.TTL(geocodeKeyPrefix + "addr")
	assert.Greater(t, ttl, time.Duration(0), "entries must expire")
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisGeocodeCacheExpiredEntriesAreMisses(t *testing.T) {
	cache, mr := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutMany(ctx, map[string]domain.Coordinates{
		"addr": {Lon: 1, Lat: 2},
	}))

	mr.FastForward(2 * time.Hour)

	got, err := cache.GetMany(ctx, []string{"addr"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisGeocodeCacheCorruptEntryIsAMiss(t *testing.T) {
	cache, mr := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(geocodeKeyPrefix+"bad", "not json"))

	got, err := cache.GetMany(ctx, []string{"bad"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisGeocodeCacheEmptyInputs(t *testing.T) {
	cache, _ := setupRedisCache(t)
	ctx := context.Background()

	got, err := cache.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, cache.PutMany(ctx, nil))
}

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	cache, _ := setupRedisCache(t)

	err := cache.PutMany(context.Background(), map[string]domain.Coordinates{
		" ": {Lon: 1, Lat: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty address key")
}

func TestNewRedisGeocodeCacheDefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cache := NewRedisGeocodeCache(client, 0)
	assert.Equal(t, DefaultGeocodeTTL, cache.TTL)
}
