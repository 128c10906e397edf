// Package analysis summarises collision surfaces and measures how close the
// camera is to them.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/locator"
	"github.com/philipparndt/goendo/pkg/stl"
)

// SurfaceReport describes a surface and its spatial index
type SurfaceReport struct {
	BoundingBox     geometry.BoundingBox `json:"bounding_box"`
	Dimensions      geometry.Vector3     `json:"dimensions"`
	SurfaceArea     float64              `json:"surface_area"`
	CellCount       int                  `json:"cell_count"`
	EdgeCount       int                  `json:"edge_count"`
	DegenerateCells int                  `json:"degenerate_cells"`
	MinEdgeLength   float64              `json:"min_edge_length"`
	MaxEdgeLength   float64              `json:"max_edge_length"`
	AvgEdgeLength   float64              `json:"avg_edge_length"`
	Locator         locator.Stats        `json:"locator"`
}

// AnalyzeSurface measures model. loc may be nil, in which case no index
// statistics are reported.
func AnalyzeSurface(model *stl.Model, loc *locator.CellLocator) *SurfaceReport {
	result := &SurfaceReport{
		BoundingBox: model.BoundingBox(),
		SurfaceArea: model.SurfaceArea(),
		CellCount:   model.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		if triangle.IsDegenerate() {
			result.DegenerateCells++
		}
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			result.EdgeCount++
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	if loc != nil {
		if loc.IsStale() {
			loc.Build()
		}
		result.Locator = loc.Stats()
	}

	return result
}

// NearestVertex finds the vertex of model closest to point by scanning every cell
func NearestVertex(model *stl.Model, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDistance := math.Inf(1)

	for _, triangle := range model.Triangles {
		for _, vertex := range triangle.Vertices() {
			distance := point.Distance(vertex)
			if distance < minDistance {
				minDistance = distance
				nearestVertex = vertex
			}
		}
	}

	return nearestVertex, minDistance
}

// Clearance returns the distance from point to the closest vertex of a cell
// within reach of it. Cells are looked up through loc; when none lies within
// reach the result is +Inf.
func Clearance(loc *locator.CellLocator, point geometry.Vector3, reach float64) float64 {
	if loc == nil || loc.Model() == nil {
		return math.Inf(1)
	}
	model := loc.Model()

	clearance := math.Inf(1)
	for _, id := range loc.FindCellsWithinBounds(geometry.BoxAround(point, reach)) {
		for _, vertex := range model.Cell(id).Vertices() {
			clearance = math.Min(clearance, point.Distance(vertex))
		}
	}
	return clearance
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
