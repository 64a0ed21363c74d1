// Package testutil provides in-memory doubles for the pipeline ports.
// The mocks record calls so tests can assert the pipeline's sequencing
// as well as its output.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/ports"
)

// MockGeocoder resolves addresses from a fixed table. Addresses absent
// from the table geocode to zero candidates; addresses in FailOn return
// an error instead.
type MockGeocoder struct {
	Coords map[string]domain.Coordinates
	FailOn map[string]error
	Calls  []string
}

func (m *MockGeocoder) Lookup(ctx context.Context, text string, limit int) ([]domain.Coordinates, error) {
	m.Calls = append(m.Calls, text)

	if err, ok := m.FailOn[text]; ok {
		return nil, err
	}

	coord, ok := m.Coords[text]
	if !ok {
		return []domain.Coordinates{}, nil
	}
	return []domain.Coordinates{coord}, nil
}

// MockSolver returns jobs in a fixed Order (by job id). A nil Order
// echoes the submitted order back.
type MockSolver struct {
	Order      []int
	Unassigned int
	Err        error

	Called      bool
	LastVehicle domain.Vehicle
	LastJobs    []domain.Job
}

func (m *MockSolver) Solve(ctx context.Context, vehicle domain.Vehicle, jobs []domain.Job) (*domain.Solution, error) {
	m.Called = true
	m.LastVehicle = vehicle
	m.LastJobs = append([]domain.Job(nil), jobs...)

	if m.Err != nil {
		return nil, m.Err
	}

	order := m.Order
	if order == nil {
		order = make([]int, 0, len(jobs))
		for _, j := range jobs {
			order = append(order, j.ID)
		}
	}

	steps := make([]domain.SolutionStep, 0, len(order)+2)
	steps = append(steps, domain.SolutionStep{Kind: domain.StepStart})
	for _, id := range order {
		steps = append(steps, domain.SolutionStep{Kind: domain.StepJob, JobID: id})
	}
	steps = append(steps, domain.SolutionStep{Kind: domain.StepEnd})

	return &domain.Solution{Steps: steps, Unassigned: m.Unassigned}, nil
}

// MockDirections answers calls in sequence from Routes and Errs, and
// records every coordinate list it was asked about. The pipeline calls
// directions twice per run: baseline first, optimized second.
type MockDirections struct {
	Routes []*ports.DirectionsRoute
	Errs   []error
	Calls  [][]domain.Coordinates
}

func (m *MockDirections) Route(ctx context.Context, coords []domain.Coordinates) (*ports.DirectionsRoute, error) {
	i := len(m.Calls)
	m.Calls = append(m.Calls, append([]domain.Coordinates(nil), coords...))

	if i < len(m.Errs) && m.Errs[i] != nil {
		return nil, m.Errs[i]
	}
	if i < len(m.Routes) && m.Routes[i] != nil {
		route := *m.Routes[i]
		return &route, nil
	}
	return nil, fmt.Errorf("unexpected directions call %d", i)
}

// MockGeocodeCache is an in-memory ports.GeocodeCache with injectable
// failures.
type MockGeocodeCache struct {
	mu     sync.Mutex
	Data   map[string]domain.Coordinates
	GetErr error
	PutErr error
	Puts   int
}

func (m *MockGeocodeCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, m.GetErr
	}

	out := make(map[string]domain.Coordinates)
	for _, a := range addresses {
		if coord, ok := m.Data[a]; ok {
			out[a] = coord
		}
	}
	return out, nil
}

func (m *MockGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PutErr != nil {
		return m.PutErr
	}

	if m.Data == nil {
		m.Data = make(map[string]domain.Coordinates)
	}
	for addr, coord := range results {
		m.Data[addr] = coord
	}
	m.Puts++
	return nil
}
