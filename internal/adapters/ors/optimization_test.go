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

func testVehicleAndJobs() (domain.Vehicle, []domain.Job) {
	vehicle := domain.Vehicle{
		ID:    1,
		Start: domain.Coordinates{Lon: -84.48, Lat: 42.73},
		End:   domain.Coordinates{Lon: -84.48, Lat: 42.73},
	}
	jobs := []domain.Job{
		{ID: 0, Location: domain.Coordinates{Lon: -83.04, Lat: 42.33}},
		{ID: 1, Location: domain.Coordinates{Lon: -85.67, Lat: 42.96}},
	}
	return vehicle, jobs
}

func TestSolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/optimization", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req optimizationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Vehicles, 1)
		assert.Equal(t, "driving-car", req.Vehicles[0].Profile)
		assert.Equal(t, []float64{-84.48, 42.73}, req.Vehicles[0].Start)
		assert.Equal(t, req.Vehicles[0].Start, req.Vehicles[0].End)
		require.Len(t, req.Jobs, 2)
		assert.Equal(t, 0, req.Jobs[0].ID)
		assert.Equal(t, []float64{-83.04, 42.33}, req.Jobs[0].Location)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"routes": [{"steps": [
				{"type": "start"},
				{"type": "job", "id": 1},
				{"type": "job", "id": 0},
				{"type": "end"}
			]}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	solution, err := client.Solve(context.Background(), vehicle, jobs)
	require.NoError(t, err)
	assert.Equal(t, 0, solution.Unassigned)

	require.Len(t, solution.Steps, 4)
	assert.Equal(t, domain.StepStart, solution.Steps[0].Kind)
	assert.Equal(t, domain.StepJob, solution.Steps[1].Kind)
	assert.Equal(t, 1, solution.Steps[1].JobID)
	assert.Equal(t, domain.StepJob, solution.Steps[2].Kind)
	assert.Equal(t, 0, solution.Steps[2].JobID)
	assert.Equal(t, domain.StepEnd, solution.Steps[3].Kind)
}

func TestSolveNonZeroCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 3, "error": "routing engine error"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	_, err := client.Solve(context.Background(), vehicle, jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 3")
	assert.Contains(t, err.Error(), "routing engine error")
}

func TestSolveReportsUnassigned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0,
			"unassigned": [{"id": 1}],
			"routes": [{"steps": [
				{"type": "start"},
				{"type": "job", "id": 0},
				{"type": "end"}
			]}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	solution, err := client.Solve(context.Background(), vehicle, jobs)
	require.NoError(t, err)
	assert.Equal(t, 1, solution.Unassigned)
}

func TestSolveRejectsUnknownStepType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "routes": [{"steps": [{"type": "break"}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	_, err := client.Solve(context.Background(), vehicle, jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step type")
}

func TestSolveRejectsJobStepWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "routes": [{"steps": [{"type": "job"}]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	_, err := client.Solve(context.Background(), vehicle, jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job step missing id")
}

func TestSolveRejectsMultipleRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "routes": [{"steps": []}, {"steps": []}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	vehicle, jobs := testVehicleAndJobs()

	_, err := client.Solve(context.Background(), vehicle, jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1 route")
}
