package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goendo/pkg/geometry"
)

// syncCamera copies the navigation camera into the raylib camera. The
// navigation camera is the only source of truth; nothing writes back.
func (app *App) syncCamera() {
	cam := app.Camera.camera
	app.Camera.view = rl.Camera3D{
		Position:   toRaylib(cam.Position),
		Target:     toRaylib(cam.FocalPoint),
		Up:         toRaylib(cam.ViewUp),
		Fovy:       float32(cam.FOV),
		Projection: rl.CameraPerspective,
	}
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
