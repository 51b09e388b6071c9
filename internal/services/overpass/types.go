package overpass

// OverpassResponse represents the Overpass interpreter JSON response
type OverpassResponse struct {
	Elements []OverpassElement `json:"elements"`
}

// OverpassElement represents a single raw POI element. Point elements carry
// a direct lat/lon pair; way/area elements carry a center sub-object instead.
type OverpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *OverpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// OverpassCenter is the computed centroid of a way/area element
type OverpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
