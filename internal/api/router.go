package api

import (
	"net/http"
	"time"

	"route-optimizer-service/internal/api/handlers"
	"route-optimizer-service/internal/metrics"
	"route-optimizer-service/internal/ports"
	"route-optimizer-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	solver ports.RouteSolver,
	directions ports.DirectionsProvider,
	cache ports.GeocodeCache,
	fuel services.FuelConfig,
	geocodeDelay time.Duration,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder:     geocoder,
		Solver:       solver,
		Directions:   directions,
		Cache:        cache,
		DefaultFuel:  fuel,
		GeocodeDelay: geocodeDelay,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/routes/optimize", routeHandler.Optimize)
	mux.HandleFunc("/routes/last", routeHandler.LastPlan)

	return loggingMiddleware(mux)
}
