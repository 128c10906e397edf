package geometry

import "math"

// Triangle represents a triangular cell in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Vertices returns the three corners in winding order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// CalculateNormal computes the normal vector for the triangle
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Bounds returns the axis-aligned box enclosing the triangle
func (t Triangle) Bounds() BoundingBox {
	return BoundingBox{
		Min: t.V1.Min(t.V2).Min(t.V3),
		Max: t.V1.Max(t.V2).Max(t.V3),
	}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// IsDegenerate reports whether the triangle has (almost) no area
func (t Triangle) IsDegenerate() bool {
	return t.Area() < 1e-12
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// IntersectSegment returns the point where segment [a, b] crosses the triangle.
//
// Uses Möller–Trumbore. Segments lying in the triangle plane are reported as
// not crossing.
func (t Triangle) IntersectSegment(a, b Vector3) (Vector3, bool) {
	const eps = 1e-12

	dir := b.Sub(a)
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)

	p := dir.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < eps {
		return Vector3{}, false
	}
	inv := 1.0 / det

	s := a.Sub(t.V1)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return Vector3{}, false
	}

	q := s.Cross(edge1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return Vector3{}, false
	}

	along := edge2.Dot(q) * inv
	if along < 0 || along > 1 {
		return Vector3{}, false
	}

	return a.Add(dir.Mul(along)), true
}
