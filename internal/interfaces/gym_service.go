package interfaces

import (
	"context"

	"github.com/ternarybob/gymscout/internal/models"
)

// GymService owns the reconciled gym list: the single source of truth the
// UI renders.
type GymService interface {
	// Load fetches the verified catalog and shadow candidates concurrently,
	// joins them and replaces the reconciled list. Discovery failures
	// degrade to verified-only results; results arriving after Close are
	// discarded.
	Load(ctx context.Context, center models.Coordinate) error

	// Gyms returns a snapshot of the reconciled list.
	Gyms() []models.Gym

	// FindByID looks up a reconciled entry by id.
	FindByID(id string) (models.Gym, bool)

	// Append adds a freshly created verified gym to the tail of the list
	// without re-running reconciliation (the backend already deduplicated
	// it at submission time).
	Append(gym models.VerifiedGym)

	// Close marks the service torn down; in-flight loads are discarded.
	Close()
}
