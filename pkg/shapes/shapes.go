// Package shapes generates triangle meshes for bounding proxies, synthetic
// cavities and test fixtures.
package shapes

import (
	"math"

	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/stl"
)

// Sphere tessellates a UV sphere with thetaRes longitudinal slices and phiRes
// latitude bands (poles included). Both resolutions are clamped to a minimum of 3.
func Sphere(center geometry.Vector3, radius float64, thetaRes, phiRes int) *stl.Model {
	thetaRes = max(thetaRes, 3)
	phiRes = max(phiRes, 3)

	point := func(theta, phi float64) geometry.Vector3 {
		return center.Add(geometry.NewVector3(
			radius*math.Sin(phi)*math.Cos(theta),
			radius*math.Sin(phi)*math.Sin(theta),
			radius*math.Cos(phi),
		))
	}

	model := stl.NewModel("sphere")
	model.Triangles = make([]geometry.Triangle, 0, 2*thetaRes*(phiRes-1))

	north := center.Add(geometry.NewVector3(0, 0, radius))
	south := center.Sub(geometry.NewVector3(0, 0, radius))
	dTheta := 2 * math.Pi / float64(thetaRes)
	dPhi := math.Pi / float64(phiRes)

	for i := 0; i < thetaRes; i++ {
		t0 := float64(i) * dTheta
		t1 := float64(i+1) * dTheta

		addFacet(model, north, point(t0, dPhi), point(t1, dPhi))

		for j := 1; j < phiRes-1; j++ {
			p0 := float64(j) * dPhi
			p1 := float64(j+1) * dPhi
			a, b := point(t0, p0), point(t1, p0)
			c, d := point(t0, p1), point(t1, p1)
			addFacet(model, a, c, d)
			addFacet(model, a, d, b)
		}

		last := float64(phiRes-1) * dPhi
		addFacet(model, south, point(t1, last), point(t0, last))
	}

	return model
}

// Plane tessellates a square of the given size, centred on center, lying in
// the plane z = center.Z. divisions is the number of quads per side.
func Plane(center geometry.Vector3, size float64, divisions int) *stl.Model {
	divisions = max(divisions, 1)
	step := size / float64(divisions)
	origin := center.Sub(geometry.NewVector3(size/2, size/2, 0))

	model := stl.NewModel("plane")
	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			x0 := origin.X + float64(i)*step
			y0 := origin.Y + float64(j)*step
			a := geometry.NewVector3(x0, y0, center.Z)
			b := geometry.NewVector3(x0+step, y0, center.Z)
			c := geometry.NewVector3(x0+step, y0+step, center.Z)
			d := geometry.NewVector3(x0, y0+step, center.Z)
			addFacet(model, a, b, c)
			addFacet(model, a, c, d)
		}
	}
	return model
}

// Tube tessellates an open cylinder around the Z axis, from z = 0 to
// z = -length, with normals facing inwards. It is a crude stand-in for a
// reconstructed lumen.
func Tube(radius, length float64, segments, rings int) *stl.Model {
	segments = max(segments, 3)
	rings = max(rings, 1)

	point := func(seg, ring int) geometry.Vector3 {
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		z := -length * float64(ring) / float64(rings)
		return geometry.NewVector3(radius*math.Cos(theta), radius*math.Sin(theta), z)
	}

	model := stl.NewModel("tube")
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b := point(s, r), point(s+1, r)
			c, d := point(s, r+1), point(s+1, r+1)
			addFacet(model, a, b, d)
			addFacet(model, a, d, c)
		}
	}
	return model
}

func addFacet(model *stl.Model, a, b, c geometry.Vector3) {
	tri := geometry.NewTriangle(geometry.Vector3{}, a, b, c)
	tri.Normal = tri.CalculateNormal()
	model.AddTriangle(tri)
}
