// Package collision extracts local surface patches and counts intersections
// between two triangle meshes.
package collision

import (
	"github.com/philipparndt/goendo/pkg/geometry"
	"github.com/philipparndt/goendo/pkg/shapes"
	"github.com/philipparndt/goendo/pkg/stl"
)

// Source produces a mesh on demand. The returned model reflects the source
// parameters at the time of the call.
type Source interface {
	Output() *stl.Model
}

type staticSource struct {
	model *stl.Model
}

// Static wraps a fixed mesh as a Source
func Static(model *stl.Model) Source {
	return staticSource{model: model}
}

func (s staticSource) Output() *stl.Model {
	return s.model
}

const (
	DefaultSphereRadius    = 1.0
	DefaultThetaResolution = 8
	DefaultPhiResolution   = 8
)

// SphereSource is a tessellated sphere that can be moved around. The mesh is
// regenerated lazily on the first Output call after a change.
type SphereSource struct {
	center   geometry.Vector3
	radius   float64
	thetaRes int
	phiRes   int

	output *stl.Model
	dirty  bool
}

// NewSphereSource creates a sphere of DefaultSphereRadius at the origin
func NewSphereSource() *SphereSource {
	return &SphereSource{
		radius:   DefaultSphereRadius,
		thetaRes: DefaultThetaResolution,
		phiRes:   DefaultPhiResolution,
		dirty:    true,
	}
}

// SetCenter moves the sphere
func (s *SphereSource) SetCenter(center geometry.Vector3) {
	if center == s.center {
		return
	}
	s.center = center
	s.dirty = true
}

// Center returns the current sphere center
func (s *SphereSource) Center() geometry.Vector3 {
	return s.center
}

// SetRadius changes the sphere radius
func (s *SphereSource) SetRadius(radius float64) {
	if radius == s.radius {
		return
	}
	s.radius = radius
	s.dirty = true
}

// Radius returns the sphere radius
func (s *SphereSource) Radius() float64 {
	return s.radius
}

// SetResolution changes the number of slices and bands
func (s *SphereSource) SetResolution(thetaRes, phiRes int) {
	if thetaRes == s.thetaRes && phiRes == s.phiRes {
		return
	}
	s.thetaRes = thetaRes
	s.phiRes = phiRes
	s.dirty = true
}

// Output returns the tessellated sphere
func (s *SphereSource) Output() *stl.Model {
	if s.dirty || s.output == nil {
		s.output = shapes.Sphere(s.center, s.radius, s.thetaRes, s.phiRes)
		s.dirty = false
	}
	return s.output
}
