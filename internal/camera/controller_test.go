package camera

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
)

type mockSurface struct {
	commands []interfaces.CameraCommand
	err      error
}

func (m *mockSurface) PushCameraCommand(cmd interfaces.CameraCommand) error {
	m.commands = append(m.commands, cmd)
	return m.err
}

func TestFlyTo(t *testing.T) {
	surface := &mockSurface{}
	c := NewController(surface, common.GetLogger())

	c.FlyTo(models.Coordinate{Longitude: -117.16, Latitude: 32.71}, 14, 1500)

	require.Len(t, surface.commands, 1)
	assert.Equal(t, -117.16, surface.commands[0].Longitude)
	assert.Equal(t, 32.71, surface.commands[0].Latitude)
	assert.Equal(t, float64(14), surface.commands[0].Zoom)
	assert.Equal(t, 1500, surface.commands[0].DurationMs)
}

func TestFlyTo_SwallowsFailures(t *testing.T) {
	surface := &mockSurface{err: errors.New("map not mounted")}
	c := NewController(surface, common.GetLogger())

	assert.NotPanics(t, func() {
		c.FlyTo(models.Coordinate{}, 14, 1500)
	})
}

func TestFlyTo_NilSurface(t *testing.T) {
	c := NewController(nil, common.GetLogger())

	assert.NotPanics(t, func() {
		c.FlyTo(models.Coordinate{}, 14, 1500)
	})
}
