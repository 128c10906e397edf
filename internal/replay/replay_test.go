package replay

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipparndt/goendo/internal/config"
	"github.com/philipparndt/goendo/internal/navigation"
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/shapes"
	"github.com/philipparndt/goendo/pkg/viewer"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func origin() *viewer.Camera {
	return viewer.NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
}

func TestRunStopsAfterShutdown(t *testing.T) {
	wall := shapes.Plane(geometry.NewVector3(0, 0, -50), 4, 1)

	steps, err := Run(config.Default(), origin(), wall, wall, []string{"Left", " Escape ", "Up"})
	require.NoError(t, err)
	require.Len(t, steps, 2)
	require.Equal(t, navigation.IntentAzimuthLeft, steps[0].Intent)
	require.Equal(t, "Escape", steps[1].Key)
	require.True(t, steps[1].ShutdownRequested)
}

func TestRunBlockedByWall(t *testing.T) {
	wall := shapes.Plane(geometry.NewVector3(0, 0, -0.9), 4, 4)

	steps, err := Run(config.Default(), origin(), wall, wall, []string{"z"})
	require.NoError(t, err)
	require.Len(t, steps, 1)
	require.True(t, steps[0].Probed)
	require.True(t, steps[0].Blocked)
	require.Greater(t, steps[0].Position.Z, -0.9)
}

func TestRunWithoutCollision(t *testing.T) {
	wall := shapes.Plane(geometry.NewVector3(0, 0, -0.9), 4, 4)
	conf := config.Default()
	conf.Collision = false

	steps, err := Run(conf, origin(), wall, wall, []string{"z"})
	require.NoError(t, err)
	require.False(t, steps[0].Probed)
	require.InDelta(t, -0.8, steps[0].Position.Z, tolerance)
}

func TestRunClearance(t *testing.T) {
	near := shapes.Plane(geometry.NewVector3(0, 0, -1.5), 4, 4)
	steps, err := Run(config.Default(), origin(), near, near, []string{"q"})
	require.NoError(t, err)
	require.NotNil(t, steps[0].Clearance)
	require.InDelta(t, 1.5, *steps[0].Clearance, tolerance)

	far := shapes.Plane(geometry.NewVector3(0, 0, -50), 4, 4)
	steps, err = Run(config.Default(), origin(), far, far, []string{"q"})
	require.NoError(t, err)
	require.Nil(t, steps[0].Clearance)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, steps))
	require.NotContains(t, buf.String(), "clearance")
	require.Contains(t, buf.String(), `"intent": "none"`)
}

func TestCamera(t *testing.T) {
	surface := shapes.Plane(geometry.NewVector3(2, 4, -1), 4, 1)

	camera, err := Camera(surface, "", "")
	require.NoError(t, err)
	require.True(t, camera.Position.ApproxEqual(geometry.NewVector3(2, 4, -1), tolerance))
	require.True(t, camera.FocalPoint.ApproxEqual(geometry.NewVector3(2, 4, -2), tolerance))

	camera, err = Camera(surface, "1, 2, 3", "")
	require.NoError(t, err)
	require.True(t, camera.Position.ApproxEqual(geometry.NewVector3(1, 2, 3), tolerance))
	require.True(t, camera.FocalPoint.ApproxEqual(geometry.NewVector3(1, 2, 2), tolerance))

	camera, err = Camera(surface, "1,2,3", "1,2,5")
	require.NoError(t, err)
	require.True(t, camera.DirectionOfProjection().ApproxEqual(geometry.NewVector3(0, 0, 1), tolerance))
	require.InDelta(t, 0, camera.ViewUp.Dot(camera.DirectionOfProjection()), tolerance)

	_, err = Camera(surface, "1,2,3", "1,2,3")
	require.Error(t, err)
	_, err = Camera(surface, "1,2", "")
	require.Error(t, err)
}

func TestParseVector(t *testing.T) {
	v, err := ParseVector(" -1.5,0,2e1")
	require.NoError(t, err)
	require.Equal(t, geometry.NewVector3(-1.5, 0, 20), v)

	for _, input := range []string{"", "1,2", "1,2,3,4", "1,a,3"} {
		_, err := ParseVector(input)
		require.Error(t, err, "input %q", input)
	}
}

func TestWriteTable(t *testing.T) {
	wall := shapes.Plane(geometry.NewVector3(0, 0, -0.9), 4, 4)
	steps, err := Run(config.Default(), origin(), wall, wall, []string{"z", "Up", "Escape"})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(&buf, steps)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "blocked")
	require.Contains(t, lines[2], "pitch-up")
	require.Contains(t, lines[3], "shutdown")
}
