package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// The drivable path through an ordered coordinate list.
type DirectionsRoute struct {
	Geometry [][]float64
	Summary  domain.RouteSummary
}

// Contract for retrieving road geometry and travel totals for an ordered
// coordinate sequence.
type DirectionsProvider interface {
	Route(ctx context.Context, coords []domain.Coordinates) (*DirectionsRoute, error)
}
