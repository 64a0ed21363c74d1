package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Contract for resolving free-form address text to coordinates.
//
// An empty candidate list with a nil error means the service answered but
// knows no such place; callers treat that as a skippable miss. A non-nil
// error means the lookup itself failed.
type Geocoder interface {
	// Return up to limit candidate coordinates, best match first.
	Lookup(ctx context.Context, text string, limit int) ([]domain.Coordinates, error)
}
