package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/logger"
	"route-optimizer-service/internal/platform/obs"
)

const geocodeKeyPrefix = "geocode:"

// DefaultGeocodeTTL bounds how long a resolved coordinate is trusted.
// Street-level geocodes rarely move, so the window is generous.
const DefaultGeocodeTTL = 30 * 24 * time.Hour

type cachedCoordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// RedisGeocodeCache is a TTL'd address -> coordinate cache. Entries
// expire on their own, so stale geocodes age out without an explicit
// invalidation path.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = DefaultGeocodeTTL
	}
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached coordinates for the given addresses.
func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	if len(addresses) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(addresses))
	keys := make([]string, 0, len(addresses))
	for _, a := range addresses {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}

		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		uniq = append(uniq, a)
		keys = append(keys, geocodeKeyPrefix+a)
	}

	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var c cachedCoordinate
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			// Corrupt entries count as misses; the geocoder rewrites them.
			logger.L().Warn("discarding unreadable geocode cache entry", "key", keys[i])
			continue
		}
		out[uniq[i]] = domain.Coordinates{Lon: c.Lon, Lat: c.Lat}
	}

	return out, nil
}

// Store address -> coordinate mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}

		payload, err := json.Marshal(cachedCoordinate{Lon: c.Lon, Lat: c.Lat})
		if err != nil {
			return fmt.Errorf("insert geocode cache coord=%q: %w", addr, err)
		}
		pipe.Set(ctx, geocodeKeyPrefix+addr, payload, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}
