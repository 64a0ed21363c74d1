package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Contract for the external optimizer that sequences stops.
type RouteSolver interface {
	// Return a visiting order for jobs with the vehicle fixed at both ends.
	Solve(ctx context.Context, vehicle domain.Vehicle, jobs []domain.Job) (*domain.Solution, error)
}
