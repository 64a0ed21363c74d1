package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/logger"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// RouteHandler runs the optimization pipeline and owns the last
// completed plan. Each successful run replaces the snapshot wholesale;
// nothing mutates it in place.
type RouteHandler struct {
	Geocoder   ports.Geocoder
	Solver     ports.RouteSolver
	Directions ports.DirectionsProvider
	Cache      ports.GeocodeCache

	DefaultFuel  services.FuelConfig
	GeocodeDelay time.Duration

	mu   sync.RWMutex
	last *dto.OptimizeResponse
}

// Optimize handles POST /routes/optimize: run the pipeline on the
// submitted addresses and return the optimized plan.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	text := req.AddressText
	if len(req.Addresses) > 0 {
		text = strings.Join(req.Addresses, "\n")
	}

	fuel := h.DefaultFuel
	if req.MilesPerGallon != 0 {
		fuel.MilesPerGallon = req.MilesPerGallon
	}
	if req.PricePerGallon != 0 {
		fuel.PricePerGallon = req.PricePerGallon
	}
	if err := fuel.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	delay := h.GeocodeDelay
	if req.RateLimitSeconds > 0 {
		delay = time.Duration(req.RateLimitSeconds * float64(time.Second))
	}

	svcReq := services.OptimizeRouteRequest{
		AddressText:  text,
		GeocodeDelay: delay,
		Fuel:         fuel,
		Progress: func(current, total int, label string) {
			logger.L().Info("geocoding address", "current", current, "total", total, "address", label)
		},
	}

	result, err := services.OptimizeRoute(r.Context(), svcReq, h.Geocoder, h.Solver, h.Directions, h.Cache)
	if err != nil {
		writePipelineError(w, r, err)
		return
	}

	res := toOptimizeResponse(result)

	h.mu.Lock()
	h.last = res
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, res)
}

// LastPlan handles GET /routes/last: the most recent successful result.
func (h *RouteHandler) LastPlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.mu.RLock()
	last := h.last
	h.mu.RUnlock()

	if last == nil {
		writeError(w, r, http.StatusNotFound, "no route planned yet")
		return
	}

	writeJSON(w, r, http.StatusOK, last)
}

// writePipelineError maps the pipeline failure taxonomy onto HTTP status
// codes. Upstream failures surface with their cause so callers can show
// something actionable.
func writePipelineError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		geocodeErr    *services.ErrGeocodingFailed
		locationsErr  *services.ErrInsufficientLocations
		solverErr     *services.ErrOptimizationFailed
		directionsErr *services.ErrDirectionsFailed
	)

	switch {
	case errors.Is(err, services.ErrEmptyInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &locationsErr):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &geocodeErr), errors.As(err, &solverErr), errors.As(err, &directionsErr):
		logger.L().Error("pipeline failed", "err", err)
		writeError(w, r, http.StatusBadGateway, err.Error())
	default:
		logger.L().Error("optimize route failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toOptimizeResponse(result *services.OptimizeRouteResult) *dto.OptimizeResponse {
	plan := result.Plan

	coords := make([]dto.CoordinateResponse, 0, len(plan.OrderedCoordinates))
	for _, c := range plan.OrderedCoordinates {
		coords = append(coords, dto.CoordinateResponse{Lon: c.Lon, Lat: c.Lat})
	}

	res := &dto.OptimizeResponse{
		Plan: dto.RoutePlanResponse{
			Stops:           plan.OrderedStopLabels,
			Coordinates:     coords,
			Geometry:        plan.Geometry,
			DistanceMeters:  plan.Summary.DistanceMeters,
			DurationSeconds: plan.Summary.DurationSeconds,
		},
		FuelCostUSD: result.FuelCostUSD,
		Skipped:     make([]dto.SkippedAddressResponse, 0, len(result.Skipped)),
		Warnings:    result.Warnings,
	}

	if result.Baseline != nil {
		res.Baseline = &dto.RouteSummaryResponse{
			DistanceMeters:  result.Baseline.DistanceMeters,
			DurationSeconds: result.Baseline.DurationSeconds,
		}
	}

	if result.Savings != nil {
		res.Savings = &dto.SavingsResponse{
			SavedDistanceKm:      result.Savings.SavedDistanceKm,
			SavedDurationSeconds: result.Savings.SavedDurationSeconds,
			PercentSaved:         result.Savings.PercentSaved,
		}
	}

	for _, s := range result.Skipped {
		res.Skipped = append(res.Skipped, dto.SkippedAddressResponse{
			Address: s.Address,
			Reason:  s.Reason,
		})
	}

	return res
}
