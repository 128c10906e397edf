package shapes

import (
	"testing"

	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/stretchr/testify/require"
)

func TestSphere(t *testing.T) {
	center := geometry.NewVector3(1, 2, 3)
	sphere := Sphere(center, 2, 8, 8)

	require.Equal(t, 2*8*7, sphere.TriangleCount())
	for _, tri := range sphere.Triangles {
		for _, v := range tri.Vertices() {
			require.InDelta(t, 2.0, v.Distance(center), 1e-9)
		}
	}

	bounds := sphere.BoundingBox()
	require.True(t, bounds.Center().ApproxEqual(center, 1e-9))
}

func TestSphereClampsResolution(t *testing.T) {
	sphere := Sphere(geometry.Vector3{}, 1, 0, 1)
	require.Equal(t, 2*3*2, sphere.TriangleCount())
}

func TestPlane(t *testing.T) {
	plane := Plane(geometry.NewVector3(0, 0, -5), 10, 4)

	require.Equal(t, 32, plane.TriangleCount())
	require.InDelta(t, 100.0, plane.SurfaceArea(), 1e-9)

	bounds := plane.BoundingBox()
	require.Equal(t, geometry.NewVector3(-5, -5, -5), bounds.Min)
	require.Equal(t, geometry.NewVector3(5, 5, -5), bounds.Max)
}

func TestTube(t *testing.T) {
	tube := Tube(3, 20, 12, 10)

	require.Equal(t, 2*12*10, tube.TriangleCount())
	bounds := tube.BoundingBox()
	require.InDelta(t, -20.0, bounds.Min.Z, 1e-9)
	require.InDelta(t, 0.0, bounds.Max.Z, 1e-9)
}
