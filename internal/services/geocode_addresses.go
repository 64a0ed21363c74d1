package services

import (
	"context"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/logger"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// ProgressFunc reports geocoding progress. current is 1-based; label is
// the address being resolved.
type ProgressFunc func(current int, total int, label string)

const skipReasonNotFound = "not found"

// geocodeAddresses resolves each address to its best-match coordinate,
// preserving input order.
//
// Lookups run strictly sequentially with a minimum delay before each
// remote call after the first; the delay honors the geocoding service's
// per-minute quota. Cached addresses resolve without a remote call and
// without consuming delay. A lookup that answers with zero candidates is
// recorded as a skip and the batch continues; a failed lookup aborts the
// batch.
func geocodeAddresses(
	ctx context.Context,
	geocoder ports.Geocoder,
	cache ports.GeocodeCache,
	addresses []string,
	delay time.Duration,
	progress ProgressFunc,
) (_ []domain.GeocodedPoint, _ []domain.SkippedAddress, err error) {
	defer obs.Time(ctx, "pipeline.geocode")(&err)

	hits := map[string]domain.Coordinates{}
	if cache != nil {
		var cerr error
		hits, cerr = cache.GetMany(ctx, addresses)
		if cerr != nil {
			// A broken cache must not take geocoding down with it.
			logger.L().Warn("geocode cache read failed", "err", cerr)
			hits = map[string]domain.Coordinates{}
		}
	}

	points := make([]domain.GeocodedPoint, 0, len(addresses))
	skipped := make([]domain.SkippedAddress, 0)
	fresh := make(map[string]domain.Coordinates)

	total := len(addresses)
	calledRemote := false

	for i, addr := range addresses {
		if progress != nil {
			progress(i+1, total, addr)
		}

		if coord, ok := hits[addr]; ok {
			metrics.GeocodeCacheHitsTotal.Inc()
			points = append(points, domain.GeocodedPoint{Address: addr, Coord: coord})
			continue
		}

		if calledRemote && delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, nil, ctx.Err()
			case <-timer.C:
			}
		}

		calledRemote = true
		metrics.GeocodeLookupsTotal.Inc()

		candidates, lerr := geocoder.Lookup(ctx, addr, 1)
		if lerr != nil {
			return nil, nil, &ErrGeocodingFailed{Address: addr, Cause: lerr}
		}

		if len(candidates) == 0 {
			metrics.GeocodeSkipsTotal.Inc()
			logger.L().Warn("address not found, skipping", "address", addr)
			skipped = append(skipped, domain.SkippedAddress{Address: addr, Reason: skipReasonNotFound})
			continue
		}

		coord := candidates[0]
		points = append(points, domain.GeocodedPoint{Address: addr, Coord: coord})
		fresh[addr] = coord
		// Later duplicates of the same line resolve from the in-run result.
		hits[addr] = coord
	}

	if cache != nil && len(fresh) > 0 {
		if perr := cache.PutMany(ctx, fresh); perr != nil {
			logger.L().Warn("geocode cache write failed", "err", perr)
		}
	}

	return points, skipped, nil
}
