// Package reconciler merges the verified catalog with shadow discovery
// results into the single ordered list the UI renders.
package reconciler

import (
	"strings"

	"github.com/ternarybob/gymscout/internal/models"
)

// NormalizeName folds a gym name for deduplication: lower-cased and
// whitespace-trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Reconcile concatenates verified gyms (catalog order) with the shadow
// candidates (discovery order) whose normalized names do not collide with
// any verified name. Pure and deterministic.
//
// Dedup runs only against verified names: two shadow candidates sharing a
// normalized name but carrying different OSM ids both survive.
func Reconcile(verified []models.VerifiedGym, shadow []models.ShadowGym) []models.Gym {
	verifiedNames := make(map[string]struct{}, len(verified))
	for _, gym := range verified {
		verifiedNames[NormalizeName(gym.Name)] = struct{}{}
	}

	result := make([]models.Gym, 0, len(verified)+len(shadow))
	for _, gym := range verified {
		result = append(result, models.VerifiedEntry(gym))
	}
	for _, gym := range shadow {
		if _, exists := verifiedNames[NormalizeName(gym.Name)]; exists {
			continue
		}
		result = append(result, models.ShadowEntry(gym))
	}

	return result
}
