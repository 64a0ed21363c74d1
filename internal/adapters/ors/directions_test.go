package ors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-optimizer-service/internal/domain"
)

func TestRouteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/directions/driving-car/geojson", r.URL.Path)

		var req directionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Coordinates, 3)
		assert.Equal(t, []float64{-84.48, 42.73}, req.Coordinates[0])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"features": [{
				"properties": {"summary": {"distance": 91000.5, "duration": 4200.25}},
				"geometry": {
					"type": "LineString",
					"coordinates": [[-84.48, 42.73], [-84.10, 42.55], [-83.04, 42.33]]
				}
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	coords := []domain.Coordinates{
		{Lon: -84.48, Lat: 42.73},
		{Lon: -83.04, Lat: 42.33},
		{Lon: -84.48, Lat: 42.73},
	}

	route, err := client.Route(context.Background(), coords)
	require.NoError(t, err)

	assert.Equal(t, 91000.5, route.Summary.DistanceMeters)
	assert.Equal(t, 4200.25, route.Summary.DurationSeconds)
	require.Len(t, route.Geometry, 3)
	assert.Equal(t, []float64{-84.10, 42.55}, route.Geometry[1])
}

func TestRouteRequiresTwoCoordinates(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.Route(context.Background(), []domain.Coordinates{{Lon: -84.48, Lat: 42.73}})
	require.Error(t, err)
	assert.False(t, called, "no request may be issued for a single coordinate")
}

func TestRouteNoFeatures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	coords := []domain.Coordinates{
		{Lon: -84.48, Lat: 42.73},
		{Lon: -83.04, Lat: 42.33},
	}

	_, err := client.Route(context.Background(), coords)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no routes")
}

func TestRouteServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":2010,"message":"could not find routable point"}}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	coords := []domain.Coordinates{
		{Lon: 0, Lat: 0},
		{Lon: 1, Lat: 1},
	}

	_, err := client.Route(context.Background(), coords)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2010")
}
