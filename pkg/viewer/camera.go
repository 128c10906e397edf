package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goendo/pkg/geometry"
)

const (
	// DefaultFOV is the vertical view angle in degrees
	DefaultFOV       = 30.0
	DefaultNearPlane = 0.5
	DefaultFarPlane  = 1000.0
)

// Camera is a perspective camera described by where it stands, what it looks
// at and which way is up. The distance between Position and FocalPoint is
// free; navigation code keeps it at 1.
type Camera struct {
	Position      geometry.Vector3
	FocalPoint    geometry.Vector3
	ViewUp        geometry.Vector3
	FOV           float64
	ClippingRange [2]float64
}

// NewCamera places a camera in the center of a bounding box, looking down -Z
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	return NewCameraAt(center, center.Add(geometry.NewVector3(0, 0, -1)))
}

// NewCameraAt creates a camera at position looking at focal
func NewCameraAt(position, focal geometry.Vector3) *Camera {
	c := &Camera{
		Position:      position,
		FocalPoint:    focal,
		ViewUp:        geometry.NewVector3(0, 1, 0),
		FOV:           DefaultFOV,
		ClippingRange: [2]float64{DefaultNearPlane, DefaultFarPlane},
	}
	c.OrthogonalizeViewUp()
	return c
}

// Distance returns the distance between position and focal point
func (c *Camera) Distance() float64 {
	return c.Position.Distance(c.FocalPoint)
}

// DirectionOfProjection is the unit vector from position to focal point
func (c *Camera) DirectionOfProjection() geometry.Vector3 {
	return c.FocalPoint.Sub(c.Position).Normalize()
}

// Right is the unit vector pointing to the right of the view
func (c *Camera) Right() geometry.Vector3 {
	return c.DirectionOfProjection().Cross(c.ViewUp).Normalize()
}

// SetDistance moves the focal point along the direction of projection so
// that it lies distance away from the position. Non-positive values are ignored.
func (c *Camera) SetDistance(distance float64) {
	if distance <= 0 {
		return
	}
	c.FocalPoint = c.Position.Add(c.DirectionOfProjection().Mul(distance))
}

// Dolly moves the position towards the focal point. A factor above 1 moves
// closer, below 1 moves away. The focal point does not move.
func (c *Camera) Dolly(factor float64) {
	if factor <= 0 {
		return
	}
	distance := c.Distance() / factor
	c.Position = c.FocalPoint.Sub(c.DirectionOfProjection().Mul(distance))
}

// OrthogonalizeViewUp makes ViewUp perpendicular to the direction of
// projection. It is left alone when the two are parallel.
func (c *Camera) OrthogonalizeViewUp() {
	dop := c.DirectionOfProjection()
	right := dop.Cross(c.ViewUp)
	if right.Length() < 1e-12 {
		return
	}
	c.ViewUp = right.Cross(dop).Normalize()
}

// Pitch rotates the focal point about the position around the right axis.
// The view-up turns with it. Positive angles (degrees) look up.
func (c *Camera) Pitch(angle float64) {
	axis := c.Right()
	offset := rotate(c.FocalPoint.Sub(c.Position), axis, angle)
	c.FocalPoint = c.Position.Add(offset)
	c.ViewUp = rotate(c.ViewUp, axis, angle)
	c.OrthogonalizeViewUp()
}

// Azimuth rotates the position about the focal point around the view-up
// vector. Angles are in degrees.
func (c *Camera) Azimuth(angle float64) {
	axis := c.ViewUp.Normalize()
	offset := rotate(c.Position.Sub(c.FocalPoint), axis, angle)
	c.Position = c.FocalPoint.Add(offset)
}

// SetClippingRange sets the near and far planes
func (c *Camera) SetClippingRange(near, far float64) {
	c.ClippingRange = [2]float64{near, far}
}

func rotate(v, axis geometry.Vector3, degrees float64) geometry.Vector3 {
	if axis.Length() == 0 {
		return v
	}
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), toVec3(axis))
	return fromVec3(q.Rotate(toVec3(v)))
}

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}
