// Package prefill derives the scouting form pre-fill from a shadow gym's
// raw POI tags.
package prefill

import "github.com/ternarybob/gymscout/internal/models"

// Extract builds a pre-fill payload from the gym's free-form tag map.
// Pure: the input tags are copied, never mutated, and each call returns a
// fresh payload.
//
// Fallback chains follow the OSM tagging conventions:
//
//	website:     "website" -> "contact:website"
//	phone:       "phone"   -> "contact:phone"
//	description: "sport" (seed only; defaulting is the caller's job)
func Extract(gym models.ShadowGym) models.PrefillPayload {
	return models.PrefillPayload{
		Name:        gym.Name,
		Coordinate:  gym.Coordinate,
		Website:     firstTag(gym.Tags, "website", "contact:website"),
		Phone:       firstTag(gym.Tags, "phone", "contact:phone"),
		Description: gym.Tags["sport"],
		RawTags:     copyTags(gym.Tags),
	}
}

// firstTag returns the first non-empty value among the given keys
func firstTag(tags map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := tags[key]; value != "" {
			return value
		}
	}
	return ""
}

func copyTags(tags map[string]string) map[string]string {
	if tags == nil {
		return nil
	}
	copied := make(map[string]string, len(tags))
	for k, v := range tags {
		copied[k] = v
	}
	return copied
}
