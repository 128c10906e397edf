package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/locator"
	"github.com/philipparndt/goendo/pkg/shapes"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSurface(t *testing.T) {
	model := shapes.Plane(geometry.NewVector3(0, 0, 0), 2, 1)
	loc := locator.New(model)

	report := AnalyzeSurface(model, loc)

	require.Equal(t, 2, report.CellCount)
	require.Equal(t, 6, report.EdgeCount)
	require.Zero(t, report.DegenerateCells)
	require.InDelta(t, 4, report.SurfaceArea, 1e-9)
	require.InDelta(t, 2, report.MinEdgeLength, 1e-9)
	require.InDelta(t, 2*math.Sqrt2, report.MaxEdgeLength, 1e-9)
	require.Equal(t, geometry.NewVector3(2, 2, 0), report.Dimensions)
	require.Equal(t, 2, report.Locator.Cells)
}

func TestAnalyzeSurfaceWithoutLocator(t *testing.T) {
	report := AnalyzeSurface(shapes.Plane(geometry.NewVector3(0, 0, 0), 2, 1), nil)
	require.Zero(t, report.Locator.Cells)
}

func TestNearestVertex(t *testing.T) {
	model := shapes.Plane(geometry.NewVector3(0, 0, 0), 2, 1)

	vertex, distance := NearestVertex(model, geometry.NewVector3(0.9, 0.9, 1))
	require.Equal(t, geometry.NewVector3(1, 1, 0), vertex)
	require.InDelta(t, math.Sqrt(0.01+0.01+1), distance, 1e-9)
}

func TestClearance(t *testing.T) {
	model := shapes.Plane(geometry.NewVector3(0, 0, -2), 4, 4)
	loc := locator.New(model)

	require.InDelta(t, 2, Clearance(loc, geometry.NewVector3(0, 0, 0), 3), 1e-9)
	require.True(t, math.IsInf(Clearance(loc, geometry.NewVector3(0, 0, 0), 1), 1))
	require.True(t, math.IsInf(Clearance(locator.New(nil), geometry.NewVector3(0, 0, 0), 1), 1))
	require.True(t, math.IsInf(Clearance(nil, geometry.NewVector3(0, 0, 0), 1), 1))
}
