package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

// The GeoJSON flavor of the directions response: geometry arrives as
// LineString coordinates ready for map display.
type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Route fetches road geometry and travel totals for an ordered
// coordinate sequence from /v2/directions/{profile}/geojson.
func (c *Client) Route(
	ctx context.Context,
	coords []domain.Coordinates,
) (_ *ports.DirectionsRoute, err error) {
	defer obs.Time(ctx, "ors.directions")(&err)

	if len(coords) < 2 {
		return nil, errors.New("directions need at least 2 coordinates")
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, c.profile)

	locations := make([][]float64, 0, len(coords))
	for _, co := range coords {
		locations = append(locations, co.CoordsToList())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: locations})
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, "directions", func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return nil, errors.New("directions response contains no routes")
	}

	feature := decoded.Features[0]

	return &ports.DirectionsRoute{
		Geometry: feature.Geometry.Coordinates,
		Summary: domain.RouteSummary{
			DistanceMeters:  feature.Properties.Summary.Distance,
			DurationSeconds: feature.Properties.Summary.Duration,
		},
	}, nil
}
