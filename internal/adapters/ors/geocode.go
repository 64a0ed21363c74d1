package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Lookup resolves free-form address text via /geocode/search and returns
// up to limit candidates, best match first. An empty result is not an
// error: the service answered and found nothing.
func (c *Client) Lookup(
	ctx context.Context,
	text string,
	limit int,
) (_ []domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	if limit < 1 {
		limit = 1
	}

	endpoint := c.baseURL + "/geocode/search"

	resp, err := c.doWithRetry(ctx, "geocode", func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", text)
		q.Set("size", strconv.Itoa(limit))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	out := make([]domain.Coordinates, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		coords := f.Geometry.Coordinates
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid coordinate format for %q", text)
		}
		out = append(out, domain.Coordinates{Lon: coords[0], Lat: coords[1]})
	}

	return out, nil
}
