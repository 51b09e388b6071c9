package interfaces

import (
	"context"

	"github.com/ternarybob/gymscout/internal/models"
)

// DiscoveryService queries an external POI index for unverified gym
// candidates near a coordinate.
type DiscoveryService interface {
	// Discover returns the shadow gyms within radiusMeters of center.
	// Elements without a usable geometry or name are skipped individually;
	// whole-query failures return ErrNetwork/ErrParse wrapped errors.
	Discover(ctx context.Context, center models.Coordinate, radiusMeters int) ([]models.ShadowGym, error)
}
