package ports

import (
	"context"

	"route-optimizer-service/internal/domain"
)

// Persistent address-to-coordinate cache consulted before remote
// geocoding. Keys are the normalized address strings.
type GeocodeCache interface {
	// Return cached coordinates for the given addresses. Missing entries
	// are absent from the map, not errors.
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	// Store resolved coordinates. Implementations overwrite existing keys.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
