package models

import "fmt"

// Coordinate is a WGS84 longitude/latitude pair.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// GeoPoint is the GeoJSON-style wire form used by the catalog backend:
// {"type":"Point","coordinates":[lon,lat]}
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a coordinate.
func NewGeoPoint(c Coordinate) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: [2]float64{c.Longitude, c.Latitude},
	}
}

// Coordinate converts the wire form back to a Coordinate.
func (p GeoPoint) Coordinate() Coordinate {
	return Coordinate{
		Longitude: p.Coordinates[0],
		Latitude:  p.Coordinates[1],
	}
}

// Equipment describes the lifting equipment available at a verified gym.
type Equipment struct {
	HasSquatRack        bool    `json:"hasSquatRack"`
	HasDeadliftPlatform bool    `json:"hasDeadliftPlatform"`
	MaxDumbbellWeight   float64 `json:"maxDumbbellWeight"`
}

// Amenities describes the comfort amenities at a verified gym.
type Amenities struct {
	HasAC      bool `json:"hasAC"`
	HasShowers bool `json:"hasShowers"`
}

// VerifiedGym is a gym record owned by the primary catalog backend.
// The core only reads these; creation happens via scout submission.
type VerifiedGym struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DayPassPrice float64   `json:"dayPassPrice"`
	Location     GeoPoint  `json:"location"`
	Equipment    Equipment `json:"equipment"`
	Amenities    Amenities `json:"amenities"`
	Website      string    `json:"website,omitempty"`
	Phone        string    `json:"phone,omitempty"`
}

// ShadowDescription is the fixed placeholder description for every
// unverified candidate discovered from OpenStreetMap.
const ShadowDescription = "Unverified Location - Scout to claim!"

// ShadowGym is a transient candidate gym discovered from the Overpass POI
// index. It is never persisted; its identity is derived from the OSM element
// id so repeated discovery queries produce the same record.
type ShadowGym struct {
	ID          string            `json:"_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Coordinate  Coordinate        `json:"coordinate"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// NewShadowGym builds a shadow gym from a raw OSM element id, name,
// coordinate and tag map.
func NewShadowGym(nativeID int64, name string, coord Coordinate, tags map[string]string) ShadowGym {
	return ShadowGym{
		ID:          fmt.Sprintf("osm-%d", nativeID),
		Name:        name,
		Description: ShadowDescription,
		Coordinate:  coord,
		Tags:        tags,
	}
}

// GymKind discriminates the two variants of a reconciled gym entry.
type GymKind string

const (
	GymKindVerified GymKind = "verified"
	GymKindShadow   GymKind = "shadow"
)

// Gym is the tagged union the UI and selection machine operate on uniformly.
// Exactly one of Verified/Shadow is set, matching Kind.
type Gym struct {
	Kind     GymKind      `json:"kind"`
	Verified *VerifiedGym `json:"verified,omitempty"`
	Shadow   *ShadowGym   `json:"shadow,omitempty"`
}

// VerifiedEntry wraps a verified gym as a reconciled entry.
func VerifiedEntry(g VerifiedGym) Gym {
	return Gym{Kind: GymKindVerified, Verified: &g}
}

// ShadowEntry wraps a shadow gym as a reconciled entry.
func ShadowEntry(g ShadowGym) Gym {
	return Gym{Kind: GymKindShadow, Shadow: &g}
}

// ID returns the identifier of whichever variant is set.
func (g Gym) ID() string {
	switch g.Kind {
	case GymKindVerified:
		return g.Verified.ID
	case GymKindShadow:
		return g.Shadow.ID
	}
	return ""
}

// Name returns the display name of whichever variant is set.
func (g Gym) Name() string {
	switch g.Kind {
	case GymKindVerified:
		return g.Verified.Name
	case GymKindShadow:
		return g.Shadow.Name
	}
	return ""
}

// Coordinate returns the map coordinate of whichever variant is set.
func (g Gym) Coordinate() Coordinate {
	switch g.Kind {
	case GymKindVerified:
		return g.Verified.Location.Coordinate()
	case GymKindShadow:
		return g.Shadow.Coordinate
	}
	return Coordinate{}
}

// PrefillPayload carries the scouting form pre-fill derived from a shadow
// gym's raw POI tags. Derived, never persisted.
type PrefillPayload struct {
	Name        string            `json:"name"`
	Coordinate  Coordinate        `json:"coordinate"`
	Website     string            `json:"website,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Description string            `json:"description,omitempty"`
	RawTags     map[string]string `json:"raw_tags,omitempty"`
}

// GymSubmission is the scout form payload submitted to create a verified gym.
type GymSubmission struct {
	Name                string     `json:"name" validate:"required"`
	Description         string     `json:"description" validate:"required"`
	DayPassPrice        float64    `json:"dayPassPrice" validate:"gte=0"`
	Coordinate          Coordinate `json:"coordinate"`
	HasSquatRack        bool       `json:"hasSquatRack"`
	HasDeadliftPlatform bool       `json:"hasDeadliftPlatform"`
	MaxDumbbellWeight   float64    `json:"maxDumbbellWeight" validate:"gte=0"`
	HasAC               bool       `json:"hasAC"`
	HasShowers          bool       `json:"hasShowers"`
	Website             string     `json:"website,omitempty" validate:"omitempty,url"`
	Phone               string     `json:"phone,omitempty"`
}
