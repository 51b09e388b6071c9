package interfaces

// CameraCommand instructs the map surface to fly to a coordinate.
type CameraCommand struct {
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	Zoom       float64 `json:"zoom"`
	DurationMs int     `json:"duration_ms"`
}

// MapSurface receives fire-and-forget camera commands. Camera movement is
// cosmetic; implementations may fail and the caller will not care.
type MapSurface interface {
	PushCameraCommand(cmd CameraCommand) error
}
