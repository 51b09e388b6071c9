// Package camera translates fly-to requests into map surface commands.
package camera

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

// Controller is a thin adapter over the map surface. Camera movement is
// cosmetic: push failures (map not mounted, no clients) are swallowed so a
// selection transition is never blocked on them.
type Controller struct {
	surface interfaces.MapSurface
	logger  arbor.ILogger
}

// NewController creates a camera controller. surface may be nil, in which
// case every command is a no-op.
func NewController(surface interfaces.MapSurface, logger arbor.ILogger) *Controller {
	return &Controller{
		surface: surface,
		logger:  logger,
	}
}

// FlyTo sends a fire-and-forget camera move to the map surface.
func (c *Controller) FlyTo(coord models.Coordinate, zoom float64, durationMs int) {
	if c.surface == nil {
		return
	}

	cmd := interfaces.CameraCommand{
		Longitude:  coord.Longitude,
		Latitude:   coord.Latitude,
		Zoom:       zoom,
		DurationMs: durationMs,
	}

	if err := c.surface.PushCameraCommand(cmd); err != nil {
		c.logger.Debug().Err(err).Msg("Camera command dropped")
	}
}
