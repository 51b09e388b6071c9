package interfaces

import (
	"context"

	"github.com/ternarybob/gymscout/internal/models"
)

// CatalogService talks to the primary gym catalog backend. The catalog is
// the authoritative source of verified gyms.
type CatalogService interface {
	// FetchGyms reads the full verified catalog.
	FetchGyms(ctx context.Context) ([]models.VerifiedGym, error)

	// CreateGym submits a scouted gym with a bearer token and returns the
	// created record. Returns ErrAuthRequired when token is empty; backend
	// rejections carry the backend's error message.
	CreateGym(ctx context.Context, token string, submission models.GymSubmission) (*models.VerifiedGym, error)
}
