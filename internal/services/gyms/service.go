package gyms

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/ternarybob/gymscout/internal/services/reconciler"
)

// Service implements the GymService interface: it orchestrates the
// concurrent catalog + discovery fetches and owns the reconciled list.
type Service struct {
	catalog      interfaces.CatalogService
	discovery    interfaces.DiscoveryService
	radiusMeters int
	logger       arbor.ILogger

	// alive is the liveness flag captured at fetch start; results that
	// arrive after Close are discarded instead of applied.
	alive   atomic.Bool
	loadGen atomic.Int64

	mu     sync.RWMutex
	gyms   []models.Gym
	notify func([]models.Gym)
}

// NewService creates a gym service. notify may be nil; when set it runs
// after every list replacement with a snapshot of the new list.
func NewService(catalog interfaces.CatalogService, discovery interfaces.DiscoveryService, radiusMeters int, logger arbor.ILogger, notify func([]models.Gym)) *Service {
	s := &Service{
		catalog:      catalog,
		discovery:    discovery,
		radiusMeters: radiusMeters,
		logger:       logger,
		notify:       notify,
	}
	s.alive.Store(true)
	return s
}

// Load fetches the verified catalog and the shadow candidates concurrently,
// joins them, and replaces the reconciled list. Discovery failures degrade
// to verified-only results; a catalog failure is surfaced because the
// verified list is authoritative truth the app cannot render without.
func (s *Service) Load(ctx context.Context, center models.Coordinate) error {
	generation := s.loadGen.Add(1)

	var (
		wg         sync.WaitGroup
		verified   []models.VerifiedGym
		catalogErr error
		shadows    []models.ShadowGym
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		verified, catalogErr = s.catalog.FetchGyms(ctx)
	}()
	go func() {
		defer wg.Done()
		found, err := s.discovery.Discover(ctx, center, s.radiusMeters)
		if err != nil {
			// Degrade to verified-only results: fewer pins, never an error
			// dialog.
			s.logger.Warn().Err(err).Msg("Discovery failed, continuing with verified gyms only")
			return
		}
		shadows = found
	}()
	wg.Wait()

	if catalogErr != nil {
		return fmt.Errorf("failed to load verified catalog: %w", catalogErr)
	}

	// Check liveness before mutating shared state after the suspension
	// point: results arriving after teardown are discarded.
	if !s.alive.Load() {
		s.logger.Debug().Msg("Discarding load result after teardown")
		return nil
	}
	if generation != s.loadGen.Load() {
		s.logger.Debug().Int64("generation", generation).Msg("Discarding superseded load result")
		return nil
	}

	reconciled := reconciler.Reconcile(verified, shadows)

	s.mu.Lock()
	s.gyms = reconciled
	s.mu.Unlock()

	s.logger.Info().
		Int("verified", len(verified)).
		Int("shadow", len(shadows)).
		Int("reconciled", len(reconciled)).
		Msg("Gym list reconciled")

	s.notifyListeners()
	return nil
}

// Gyms returns a snapshot of the reconciled list.
func (s *Service) Gyms() []models.Gym {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]models.Gym, len(s.gyms))
	copy(snapshot, s.gyms)
	return snapshot
}

// FindByID looks up a reconciled entry by id.
func (s *Service) FindByID(id string) (models.Gym, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, gym := range s.gyms {
		if gym.ID() == id {
			return gym, true
		}
	}
	return models.Gym{}, false
}

// Append adds a freshly created verified gym to the tail of the list. The
// backend deduplicated it at submission time, so reconciliation is not
// re-run.
func (s *Service) Append(gym models.VerifiedGym) {
	if !s.alive.Load() {
		return
	}

	s.mu.Lock()
	s.gyms = append(s.gyms, models.VerifiedEntry(gym))
	s.mu.Unlock()

	s.logger.Info().Str("gym_id", gym.ID).Str("name", gym.Name).Msg("Scouted gym appended to list")
	s.notifyListeners()
}

// Close marks the service torn down. In-flight loads observe the flag and
// discard their results.
func (s *Service) Close() {
	s.alive.Store(false)
}

func (s *Service) notifyListeners() {
	if s.notify != nil {
		s.notify(s.Gyms())
	}
}
