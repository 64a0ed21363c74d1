package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/logger"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// DefaultGeocodeDelay spaces remote geocoding calls to fit the ORS
// free-tier per-minute quota.
const DefaultGeocodeDelay = 1200 * time.Millisecond

type OptimizeRouteRequest struct {
	// AddressText is the raw input, one address per line. The first
	// address is the depot: the route starts and ends there.
	AddressText string
	// GeocodeDelay is the minimum spacing between remote geocoder calls.
	// Zero or negative selects DefaultGeocodeDelay.
	GeocodeDelay time.Duration
	Fuel         FuelConfig
	// Progress, when set, is invoked once per address during geocoding.
	Progress ProgressFunc
}

type OptimizeRouteResult struct {
	Plan *domain.RoutePlan
	// Baseline is the as-entered route's summary, nil when the baseline
	// comparison could not be computed.
	Baseline    *domain.RouteSummary
	Savings     *domain.SavingsReport
	FuelCostUSD float64
	Skipped     []domain.SkippedAddress
	Warnings    []string
}

// OptimizeRoute runs the full pipeline: normalize, geocode, baseline
// comparison, solve, road geometry, then savings and fuel arithmetic.
//
// Stages run strictly sequentially and each consumes the previous
// stage's output. A baseline failure degrades to "savings unavailable";
// every other stage failure aborts the run with a typed error.
func OptimizeRoute(
	ctx context.Context,
	req OptimizeRouteRequest,
	geocoder ports.Geocoder,
	solver ports.RouteSolver,
	directions ports.DirectionsProvider,
	cache ports.GeocodeCache,
) (_ *OptimizeRouteResult, err error) {
	start := time.Now()
	metrics.PipelineRunsTotal.Inc()
	defer func() {
		metrics.PipelineDurationMs.Observe(float64(time.Since(start).Milliseconds()))
		if err != nil {
			metrics.PipelineFailuresTotal.WithLabelValues(failureStage(err)).Inc()
		}
	}()
	defer obs.Time(ctx, "pipeline.optimize_route")(&err)

	if err := req.Fuel.Validate(); err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	addresses, err := NormalizeAddresses(req.AddressText)
	if err != nil {
		return nil, err
	}

	warnings := []string{}
	if len(addresses) > MaxAddresses {
		warnings = append(warnings, fmt.Sprintf(
			"%d addresses exceed the recommended maximum of %d; geocoding will be slow",
			len(addresses), MaxAddresses,
		))
	}

	delay := req.GeocodeDelay
	if delay <= 0 {
		delay = DefaultGeocodeDelay
	}

	points, skipped, err := geocodeAddresses(ctx, geocoder, cache, addresses, delay, req.Progress)
	if err != nil {
		return nil, err
	}

	if len(points) < 2 {
		return nil, &ErrInsufficientLocations{Resolved: len(points)}
	}

	depot := points[0]

	// Baseline pass: the as-entered order closed back to the depot. Used
	// for comparison only and never allowed to fail the run.
	baseline := enteredOrderSummary(ctx, directions, points)
	if baseline == nil {
		warnings = append(warnings, "baseline comparison unavailable; savings not computed")
	}

	jobs := make([]domain.Job, 0, len(points)-1)
	for i, p := range points[1:] {
		jobs = append(jobs, domain.Job{ID: i, Location: p.Coord})
	}

	vehicle := domain.Vehicle{ID: 1, Start: depot.Coord, End: depot.Coord}

	solution, err := solver.Solve(ctx, vehicle, jobs)
	if err != nil {
		return nil, &ErrOptimizationFailed{Cause: err}
	}

	ordered, labels, err := reconstructVisitOrder(points, solution)
	if err != nil {
		return nil, &ErrOptimizationFailed{Cause: err}
	}

	route, err := directions.Route(ctx, ordered)
	if err != nil {
		return nil, &ErrDirectionsFailed{Cause: err}
	}

	fuelCost, err := EstimateFuelCost(route.Summary.DistanceKm(), req.Fuel)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	plan := &domain.RoutePlan{
		OrderedCoordinates: ordered,
		OrderedStopLabels:  labels,
		Geometry:           route.Geometry,
		Summary:            route.Summary,
	}

	return &OptimizeRouteResult{
		Plan:        plan,
		Baseline:    baseline,
		Savings:     ComputeSavings(baseline, &route.Summary),
		FuelCostUSD: fuelCost,
		Skipped:     skipped,
		Warnings:    warnings,
	}, nil
}

// enteredOrderSummary computes the comparison route in the exact order
// the addresses were typed, depot appended to close the loop.
// Best-effort: any failure is logged and reported as a missing baseline.
func enteredOrderSummary(
	ctx context.Context,
	directions ports.DirectionsProvider,
	points []domain.GeocodedPoint,
) *domain.RouteSummary {
	coords := make([]domain.Coordinates, 0, len(points)+1)
	for _, p := range points {
		coords = append(coords, p.Coord)
	}
	coords = append(coords, points[0].Coord)

	route, err := directions.Route(ctx, coords)
	if err != nil {
		logger.L().Warn("baseline route unavailable", "err", err)
		return nil
	}

	summary := route.Summary
	return &summary
}

// reconstructVisitOrder maps the solver's job steps back onto the
// geocoded points. Only job steps populate the stop list; the depot is
// prepended and appended explicitly rather than trusting the solver's
// boundary markers.
func reconstructVisitOrder(
	points []domain.GeocodedPoint,
	solution *domain.Solution,
) ([]domain.Coordinates, []string, error) {
	if solution.Unassigned > 0 {
		return nil, nil, fmt.Errorf("solver left %d stops unassigned", solution.Unassigned)
	}

	depot := points[0].Coord

	ordered := make([]domain.Coordinates, 0, len(points)+1)
	ordered = append(ordered, depot)
	labels := make([]string, 0, len(points)-1)

	for _, step := range solution.Steps {
		if step.Kind != domain.StepJob {
			continue
		}

		// Job i corresponds to points[i+1]; the depot submits no job.
		idx := step.JobID + 1
		if step.JobID < 0 || idx >= len(points) {
			return nil, nil, fmt.Errorf("solver returned unknown job id %d", step.JobID)
		}

		ordered = append(ordered, points[idx].Coord)
		labels = append(labels, points[idx].Address)
	}

	ordered = append(ordered, depot)

	return ordered, labels, nil
}

// failureStage labels pipeline failures for metrics by the stage that
// broke.
func failureStage(err error) string {
	var (
		geocodeErr    *ErrGeocodingFailed
		locationsErr  *ErrInsufficientLocations
		solverErr     *ErrOptimizationFailed
		directionsErr *ErrDirectionsFailed
	)

	switch {
	case errors.Is(err, ErrEmptyInput):
		return "normalize"
	case errors.As(err, &geocodeErr), errors.As(err, &locationsErr):
		return "geocode"
	case errors.As(err, &solverErr):
		return "optimize"
	case errors.As(err, &directionsErr):
		return "directions"
	default:
		return "other"
	}
}
