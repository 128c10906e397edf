package stl

import (
	"github.com/philipparndt/goendo/pkg/geometry"
)

// Model is a triangle mesh. Each triangle is a cell addressed by its index.
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	version uint64
}

// NewModel creates a new empty mesh
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// NewModelFromTriangles wraps an existing triangle list
func NewModelFromTriangles(name string, triangles []geometry.Triangle) *Model {
	return &Model{
		Name:      name,
		Triangles: triangles,
	}
}

// AddTriangle adds a cell to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
	m.version++
}

// Modified marks the geometry as changed. Call it after editing Triangles in place.
func (m *Model) Modified() {
	m.version++
}

// Version changes every time the geometry changes. Spatial indexes compare it
// to detect that they are stale.
func (m *Model) Version() uint64 {
	return m.version
}

// TriangleCount returns the number of cells in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the model has no cells
func (m *Model) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Cell returns the triangle with the given id
func (m *Model) Cell(id int) geometry.Triangle {
	return m.Triangles[id]
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
