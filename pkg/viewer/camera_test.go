package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/goendo/pkg/geometry"
)

const tolerance = 1e-9

func assertVector(t *testing.T, name string, got, want geometry.Vector3) {
	t.Helper()
	if !got.ApproxEqual(want, tolerance) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNewCamera(t *testing.T) {
	bbox := geometry.BoundingBox{
		Min: geometry.NewVector3(-2, -2, -10),
		Max: geometry.NewVector3(2, 2, 0),
	}
	cam := NewCamera(bbox)

	assertVector(t, "Position", cam.Position, geometry.NewVector3(0, 0, -5))
	assertVector(t, "FocalPoint", cam.FocalPoint, geometry.NewVector3(0, 0, -6))
	if math.Abs(cam.Distance()-1) > tolerance {
		t.Errorf("Distance = %v, want 1", cam.Distance())
	}
	if cam.ClippingRange != [2]float64{DefaultNearPlane, DefaultFarPlane} {
		t.Errorf("ClippingRange = %v", cam.ClippingRange)
	}
}

func TestDolly(t *testing.T) {
	tests := []struct {
		factor float64
		want   float64 // z of the new position, starting at 0 and looking at -1
	}{
		{5, -0.8},
		{0.6, 1.0/0.6 - 1},
		{0.3, 1.0/0.3 - 1},
		{10, -0.9},
		{1, 0},
	}

	for _, tt := range tests {
		cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
		cam.Dolly(tt.factor)

		assertVector(t, "FocalPoint", cam.FocalPoint, geometry.NewVector3(0, 0, -1))
		if math.Abs(cam.Position.Z-tt.want) > tolerance {
			t.Errorf("Dolly(%v): Position.Z = %v, want %v", tt.factor, cam.Position.Z, tt.want)
		}
	}
}

func TestDollyIgnoresNonPositiveFactor(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
	cam.Dolly(0)
	cam.Dolly(-2)
	assertVector(t, "Position", cam.Position, geometry.NewVector3(0, 0, 0))
}

func TestSetDistance(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(1, 2, 3), geometry.NewVector3(1, 2, -7))
	cam.SetDistance(1)

	assertVector(t, "Position", cam.Position, geometry.NewVector3(1, 2, 3))
	assertVector(t, "FocalPoint", cam.FocalPoint, geometry.NewVector3(1, 2, 2))
}

func TestPitch(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
	cam.Pitch(90)

	assertVector(t, "Position", cam.Position, geometry.NewVector3(0, 0, 0))
	assertVector(t, "FocalPoint", cam.FocalPoint, geometry.NewVector3(0, 1, 0))
	assertVector(t, "ViewUp", cam.ViewUp, geometry.NewVector3(0, 0, 1))
}

func TestPitchPastVertical(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
	for i := 0; i < 180; i++ {
		cam.Pitch(1)
	}

	assertVector(t, "DirectionOfProjection", cam.DirectionOfProjection(), geometry.NewVector3(0, 0, 1))
	assertVector(t, "ViewUp", cam.ViewUp, geometry.NewVector3(0, -1, 0))
	assertVector(t, "Right", cam.Right(), geometry.NewVector3(1, 0, 0))
}

func TestNewCameraAtOrthogonalizesViewUp(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, -1))
	if d := cam.ViewUp.Dot(cam.DirectionOfProjection()); math.Abs(d) > tolerance {
		t.Errorf("ViewUp . DirectionOfProjection = %v, want 0", d)
	}
	if math.Abs(cam.ViewUp.Length()-1) > tolerance {
		t.Errorf("|ViewUp| = %v, want 1", cam.ViewUp.Length())
	}
}

func TestPitchIsReversible(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(3, -1, 2), geometry.NewVector3(3.6, -1.2, 1.2))
	focal := cam.FocalPoint

	cam.Pitch(1)
	if cam.FocalPoint.ApproxEqual(focal, tolerance) {
		t.Fatal("Pitch(1) did not move the focal point")
	}
	cam.Pitch(-1)
	assertVector(t, "FocalPoint", cam.FocalPoint, focal)
}

func TestAzimuth(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
	cam.Azimuth(90)

	assertVector(t, "FocalPoint", cam.FocalPoint, geometry.NewVector3(0, 0, -1))
	assertVector(t, "Position", cam.Position, geometry.NewVector3(1, 0, -1))
	if math.Abs(cam.Distance()-1) > tolerance {
		t.Errorf("Distance = %v, want 1", cam.Distance())
	}

	cam.Azimuth(-90)
	assertVector(t, "Position", cam.Position, geometry.NewVector3(0, 0, 0))
}

func TestSetClippingRange(t *testing.T) {
	cam := NewCameraAt(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 0, -1))
	cam.SetClippingRange(0.1, 10)
	if cam.ClippingRange != [2]float64{0.1, 10} {
		t.Errorf("ClippingRange = %v", cam.ClippingRange)
	}
}
